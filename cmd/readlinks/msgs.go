package readlinks

import (
	_ "embed"
	"strings"
)

// Templates from embedded files. The usage template highlights section
// headers through the funcs registered in formatting.go.
var (
	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
