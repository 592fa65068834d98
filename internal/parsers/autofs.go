package parsers

import "github.com/SH118415/insights-core/internal/core"

// AutoFSConfPath is where the automounter keeps its configuration.
const AutoFSConfPath = "/etc/autofs.conf"

// AutoFSConf is the parsed /etc/autofs.conf. The file groups daemon
// settings under "[ autofs ]" and per-parser blocks such as "[ amd ]";
// the stock file ships with most options commented out.
type AutoFSConf struct {
	*IniConfigFile
}

// NewAutoFSConf parses autofs.conf content.
func NewAutoFSConf(ctx core.Context) *AutoFSConf {
	return &AutoFSConf{ParseIni(ctx)}
}

func init() {
	Register(AutoFSConfPath, func(ctx core.Context) ConfigFile {
		return NewAutoFSConf(ctx)
	})
}
