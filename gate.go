package shuku

// GateState classifies a fetched page by what the site actually served.
type GateState int

// Gate states, in the order they are checked after the empty-body check.
const (
	GateNormal GateState = iota
	GateLogin
	GateAge
	GatePassword
	GateNotFound
)

// String returns a short name for the state, used in logs.
func (s GateState) String() string {
	switch s {
	case GateNormal:
		return "normal"
	case GateLogin:
		return "login"
	case GateAge:
		return "age"
	case GatePassword:
		return "password"
	case GateNotFound:
		return "not_found"
	}
	return "unknown"
}

// PageKind identifies which page type is being classified. It determines
// the content container whose presence rules out a login wall.
type PageKind int

// Page kinds.
const (
	PageDetail PageKind = iota
	PageReading
)

// GateDetector classifies page bodies into gate states.
// The site returns HTTP success for every wall, so classification works on
// page content alone. Implementations check login, then age, then password.
type GateDetector interface {
	Detect(html string, kind PageKind) GateState
}

// Fixed reading-content fragments returned in place of walled content.
const (
	LoginContent    = `<p>This chapter requires a signed-in account. Log in to Shuku in the browser, then reload this chapter.</p>`
	AgeContent      = `<p>This chapter is behind the site's age verification. Confirm your age on Shuku in the browser, then reload this chapter.</p>`
	PasswordContent = `<p>This chapter is password protected and cannot be read directly.</p>`
	NotFoundContent = `<p>Chapter content not found.</p>`
)

// ContentSanitizer turns a reading page into displayable content.
// Walled pages return one of the fixed fragments above together with the
// detected state; a nil error does not imply GateNormal.
type ContentSanitizer interface {
	Sanitize(html string) (content string, state GateState, err error)
}
