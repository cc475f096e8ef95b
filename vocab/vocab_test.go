package vocab_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/shuku"
	"github.com/fwojciec/shuku/mock"
	"github.com/fwojciec/shuku/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestCache_Load(t *testing.T) {
	t.Parallel()

	t.Run("empty store yields empty vocabulary", func(t *testing.T) {
		t.Parallel()

		c := vocab.NewCache(mock.NewMemoryStore())

		tags, err := c.Load(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, tags)
		assert.Empty(t, tags)
	})

	t.Run("drops non-string elements", func(t *testing.T) {
		t.Parallel()

		store := mock.NewMemoryStore()
		require.NoError(t, store.Set(context.Background(), vocab.Key, `["恋爱", 3, null, "校园", {"a":1}]`))
		c := vocab.NewCache(store)

		tags, err := c.Load(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{"恋爱", "校园"}, tags)
	})

	t.Run("malformed value yields empty vocabulary", func(t *testing.T) {
		t.Parallel()

		store := mock.NewMemoryStore()
		require.NoError(t, store.Set(context.Background(), vocab.Key, `{not json`))
		c := vocab.NewCache(store)

		tags, err := c.Load(context.Background())

		require.NoError(t, err)
		assert.Empty(t, tags)
	})

	t.Run("propagates store errors", func(t *testing.T) {
		t.Parallel()

		storeErr := errors.New("disk on fire")
		store := &mock.KVStore{
			GetFn: func(_ context.Context, _ string) (string, bool, error) {
				return "", false, storeErr
			},
		}
		c := vocab.NewCache(store)

		_, err := c.Load(context.Background())

		require.ErrorIs(t, err, storeErr)
	})
}

func TestCache_Merge(t *testing.T) {
	t.Parallel()

	t.Run("adds new tags in order", func(t *testing.T) {
		t.Parallel()

		store := mock.NewMemoryStore()
		c := vocab.NewCache(store)
		ctx := context.Background()

		added, err := c.Merge(ctx, []string{"恋爱", " 校园 ", "", "恋爱"})

		require.NoError(t, err)
		assert.Equal(t, 2, added)
		tags, err := c.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"恋爱", "校园"}, tags)
	})

	t.Run("is idempotent and skips unchanged writes", func(t *testing.T) {
		t.Parallel()

		store := mock.NewMemoryStore()
		c := vocab.NewCache(store)
		ctx := context.Background()

		_, err := c.Merge(ctx, []string{"恋爱", "校园"})
		require.NoError(t, err)
		require.Equal(t, 1, store.Writes)

		added, err := c.Merge(ctx, []string{"校园", "恋爱"})

		require.NoError(t, err)
		assert.Equal(t, 0, added)
		assert.Equal(t, 1, store.Writes)
	})

	t.Run("never shrinks", func(t *testing.T) {
		t.Parallel()

		store := mock.NewMemoryStore()
		c := vocab.NewCache(store)
		ctx := context.Background()

		_, err := c.Merge(ctx, []string{"a", "b"})
		require.NoError(t, err)
		_, err = c.Merge(ctx, []string{"c"})
		require.NoError(t, err)
		_, err = c.Merge(ctx, nil)
		require.NoError(t, err)

		tags, err := c.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, tags)
	})

	t.Run("matching is case-sensitive", func(t *testing.T) {
		t.Parallel()

		c := vocab.NewCache(mock.NewMemoryStore())

		added, err := c.Merge(context.Background(), []string{"BL", "bl"})

		require.NoError(t, err)
		assert.Equal(t, 2, added)
	})

	t.Run("propagates write errors", func(t *testing.T) {
		t.Parallel()

		writeErr := errors.New("read-only")
		store := &mock.KVStore{
			GetFn: func(_ context.Context, _ string) (string, bool, error) {
				return "", false, nil
			},
			SetFn: func(_ context.Context, _, _ string) error {
				return writeErr
			},
		}
		c := vocab.NewCache(store)

		_, err := c.Merge(context.Background(), []string{"新"})

		require.ErrorIs(t, err, writeErr)
	})
}

func TestCache_Options(t *testing.T) {
	t.Parallel()

	t.Run("sorts Chinese tags by pinyin", func(t *testing.T) {
		t.Parallel()

		c := vocab.NewCache(mock.NewMemoryStore())
		ctx := context.Background()
		_, err := c.Merge(ctx, []string{"校园", "悬疑", "爱情", "冒险"})
		require.NoError(t, err)

		opts, err := c.Options(ctx)

		require.NoError(t, err)
		assert.Equal(t, []shuku.FilterOption{
			{Label: "爱情", Value: "爱情"},
			{Label: "冒险", Value: "冒险"},
			{Label: "校园", Value: "校园"},
			{Label: "悬疑", Value: "悬疑"},
		}, opts)
	})

	t.Run("collation language is configurable", func(t *testing.T) {
		t.Parallel()

		c := vocab.NewCache(mock.NewMemoryStore(), vocab.WithLanguage(language.English))
		ctx := context.Background()
		_, err := c.Merge(ctx, []string{"b", "B", "a"})
		require.NoError(t, err)

		opts, err := c.Options(ctx)

		require.NoError(t, err)
		require.Len(t, opts, 3)
		assert.Equal(t, "a", opts[0].Value)
	})
}
