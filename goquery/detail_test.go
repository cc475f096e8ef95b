package goquery_test

import (
	"testing"

	"github.com/fwojciec/shuku"
	"github.com/fwojciec/shuku/goquery"
	"github.com/fwojciec/shuku/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const detailPage = `<html><body>
<header><a href="/login">登录/注册</a></header>
<div class="book-detail">
	<div class="book-cover"><img src="/covers/7.jpg"></div>
	<h1 class="book-title"> 长夜 余火 </h1>
	<div class="book-author"><a href="/user/9">林深</a></div>
	<ul class="book-meta">
		<li>作者：林深</li>
		<li>类型：奇幻 · 已完结</li>
		<li>字数：１２３,４５６字</li>
		<li>更新：2024-05-01 12:30</li>
	</ul>
	<div class="book-rating">评分 9.1 / 10</div>
	<div class="book-intro">
		一个关于灯塔的故事。
	</div>
	<div class="tag-box"><a href="/tag/奇幻">奇幻</a><a href="/tag/冒险">冒险</a><a href="/tag/奇幻">奇幻</a></div>
	<ul id="chapter-list">
		<li><a href="https://www.shuku.example/book/7/3" data-title="第三章 灯塔">3</a></li>
		<li><a href="//shuku.example/book/7/2">第二章 海雾</a></li>
		<li><a href="/book/7/x"></a></li>
		<li><a>无链接</a></li>
		<li><a href="/book/7/1">第一章 启程</a></li>
	</ul>
</div>
</body></html>`

func newDetailExtractor() *goquery.DetailExtractor {
	return goquery.NewDetailExtractor(testSite, goquery.NewGateDetector())
}

func TestDetailExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts full metadata", func(t *testing.T) {
		t.Parallel()

		work, err := newDetailExtractor().Extract(detailPage, "/book/7")

		require.NoError(t, err)
		assert.Equal(t, "/book/7", work.Path)
		assert.Equal(t, "长夜 余火", work.Name)
		assert.Equal(t, "https://www.shuku.example/covers/7.jpg", work.Cover)
		assert.Equal(t, "林深", work.Author)
		assert.Equal(t, shuku.StatusCompleted, work.Status)
		require.NotNil(t, work.Rating)
		assert.InDelta(t, 9.1, *work.Rating, 0.0001)
		assert.Equal(t, "一个关于灯塔的故事。", work.Summary)
		assert.Equal(t, "奇幻,冒险", work.Tags)
		require.NotNil(t, work.WordCount)
		assert.Equal(t, 123456, *work.WordCount)
	})

	t.Run("numbers chapters in document order and skips broken anchors", func(t *testing.T) {
		t.Parallel()

		work, err := newDetailExtractor().Extract(detailPage, "/book/7")

		require.NoError(t, err)
		require.Len(t, work.Chapters, 3)

		assert.Equal(t, &shuku.Chapter{Name: "第三章 灯塔", Path: "/book/7/3", Number: 1, Released: "2024-05-01 12:30"}, work.Chapters[0])
		assert.Equal(t, &shuku.Chapter{Name: "第二章 海雾", Path: "/book/7/2", Number: 2}, work.Chapters[1])
		assert.Equal(t, &shuku.Chapter{Name: "第一章 启程", Path: "/book/7/1", Number: 3}, work.Chapters[2])
	})

	t.Run("falls back to defaults on a sparse page", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="book-detail"><p>内容</p></div></body></html>`

		work, err := newDetailExtractor().Extract(html, "/book/8")

		require.NoError(t, err)
		assert.Equal(t, shuku.UntitledName, work.Name)
		assert.Equal(t, shuku.PlaceholderCover, work.Cover)
		assert.Equal(t, shuku.StatusOngoing, work.Status)
		assert.Nil(t, work.Rating)
		assert.Nil(t, work.WordCount)
		assert.Empty(t, work.Tags)
		assert.Empty(t, work.Chapters)
	})

	t.Run("update date without chapters is dropped", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="book-detail"><h1>书</h1><ul class="book-meta"><li>更新：2024-01-02</li></ul></div></body></html>`

		work, err := newDetailExtractor().Extract(html, "/book/8")

		require.NoError(t, err)
		assert.Equal(t, "书", work.Name)
		assert.Empty(t, work.Chapters)
	})

	t.Run("author from meta label when no author link", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="book-detail"><h1>书</h1><ul class="book-meta"><li>作者： 白鹭</li><li>类型：连载中</li></ul></div></body></html>`

		work, err := newDetailExtractor().Extract(html, "/book/8")

		require.NoError(t, err)
		assert.Equal(t, "白鹭", work.Author)
		assert.Equal(t, shuku.StatusOngoing, work.Status)
	})

	t.Run("unparseable numbers are omitted", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="book-detail"><h1>书</h1>
<div class="book-rating">暂无评分</div>
<ul class="book-meta"><li>字数：未知</li><li>字数：999</li></ul></div></body></html>`

		work, err := newDetailExtractor().Extract(html, "/book/8")

		require.NoError(t, err)
		assert.Nil(t, work.Rating)
		assert.Nil(t, work.WordCount)
	})

	t.Run("word count keeps every digit", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="book-detail"><h1>书</h1><ul class="book-meta"><li>字数：约 12 345 字（连载）</li></ul></div></body></html>`

		work, err := newDetailExtractor().Extract(html, "/book/8")

		require.NoError(t, err)
		require.NotNil(t, work.WordCount)
		assert.Equal(t, 12345, *work.WordCount)
	})

	t.Run("word count in ten thousands is scaled", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="book-detail"><h1>书</h1><ul class="book-meta"><li>字数：12.3万字</li></ul></div></body></html>`

		work, err := newDetailExtractor().Extract(html, "/book/8")

		require.NoError(t, err)
		require.NotNil(t, work.WordCount)
		assert.Equal(t, 123000, *work.WordCount)
	})

	t.Run("zero word count is omitted", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="book-detail"><h1>书</h1><ul class="book-meta"><li>字数：0</li></ul></div></body></html>`

		work, err := newDetailExtractor().Extract(html, "/book/8")

		require.NoError(t, err)
		assert.Nil(t, work.WordCount)
	})

	t.Run("falls back to tag-styled links", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="book-detail"><h1>书</h1>
<a class="tag" href="/tag/治愈">治愈</a>
<a class="tag" href="/category/x">不是标签</a>
<a class="tag-link" href="https://shuku.example/tag/日常?page=1">日常</a>
<a class="tag" href="/tag/治愈">治愈</a>
</div></body></html>`

		work, err := newDetailExtractor().Extract(html, "/book/8")

		require.NoError(t, err)
		assert.Equal(t, "治愈,日常", work.Tags)
	})

	t.Run("login wall yields placeholder work", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="login-box">请先登录后查看作品</div></body></html>`

		work, err := newDetailExtractor().Extract(html, "/book/9")

		require.NoError(t, err)
		assert.Equal(t, "/book/9", work.Path)
		assert.Equal(t, goquery.LoginRequiredName, work.Name)
		assert.NotEmpty(t, work.Summary)
		assert.NotNil(t, work.Chapters)
		assert.Empty(t, work.Chapters)
	})

	t.Run("empty page without login markers is not a placeholder", func(t *testing.T) {
		t.Parallel()

		work, err := newDetailExtractor().Extract(`<html><body></body></html>`, "/book/9")

		require.NoError(t, err)
		assert.Equal(t, shuku.UntitledName, work.Name)
		assert.NotEqual(t, goquery.LoginRequiredSummary, work.Summary)
	})

	t.Run("uses the injected detector", func(t *testing.T) {
		t.Parallel()

		var gotKind shuku.PageKind = -1
		detector := &mock.GateDetector{
			DetectFn: func(html string, kind shuku.PageKind) shuku.GateState {
				gotKind = kind
				return shuku.GateLogin
			},
		}
		e := goquery.NewDetailExtractor(testSite, detector)

		work, err := e.Extract(detailPage, "/book/7")

		require.NoError(t, err)
		assert.Equal(t, shuku.PageDetail, gotKind)
		assert.Equal(t, goquery.LoginRequiredName, work.Name)
	})
}
