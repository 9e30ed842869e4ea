package htmx

// Response headers.
const (
	HeaderHXReswap   = "HX-Reswap"
	HeaderHXRetarget = "HX-Retarget"
	HeaderHXTrigger  = "HX-Trigger"
	HeaderHXRefresh  = "HX-Refresh"
)

// Request headers.
const (
	HeaderHXRequest = "HX-Request"
	HeaderHXTarget  = "HX-Target"
	HeaderHXBoosted = "HX-Boosted"
)

// HeaderVary lists the request headers that change the response shape.
const HeaderVary = "Vary"
