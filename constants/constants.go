package constants

const (
	VERSION       = "1.1.0"
	DEFAULT_PERMS = 0755 // Owner: rwx, Group: rx, Others: rx

	FANTIA              = "fantia"
	FANTIA_TITLE        = "Fantia"
	FANTIA_URL          = "https://fantia.jp"
	FANTIA_POST_API_URL = "https://fantia.jp/api/v1/posts/"
	FANTIA_POST_URL     = "https://fantia.jp/posts/"

	// CSS selectors for the Fanclub's paginated posts listing page
	FANTIA_POST_LINK_SELECTOR     = "div.module.post a.link-block"
	FANTIA_NEXT_PAGE_SELECTOR     = `ul.pagination li.page-item:not(.disabled) a[rel="next"]`
	FANTIA_LOGIN_MARKER_SELECTOR  = "script#frontend-params"
	FANTIA_LOGGED_OUT_MARKER_JSON = `"is_logged_in": false`

	// Download scopes for filtering posts by their paid/free classification
	SCOPE_ALL  = "all"
	SCOPE_PAID = "paid"
	SCOPE_FREE = "free"

	DEFAULT_REQ_TIMEOUT   = 30  // in seconds
	DEFAULT_REQUEST_DELAY = 1.5 // in seconds, between consecutive network calls

	DEFAULT_OUTPUT_DIR = "fantia_novels"
	DEFAULT_USER_AGENT = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/125.0.0.0 Safari/537.36"

	CONFIG_FILE_NAME  = "config.yaml"
	TARGETS_FILE_NAME = "DL-links.txt"

	// Replacement for characters that are invalid in file paths
	PATH_PLACEHOLDER_RUNE = '-'

	// Width of the "=" rule line written below the header of each saved post
	POST_HEADER_RULE_WIDTH = 40
)
