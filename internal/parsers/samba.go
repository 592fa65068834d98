package parsers

import "github.com/SH118415/insights-core/internal/core"

// SambaConfPath is the stock location of the Samba server config.
const SambaConfPath = "/etc/samba/smb.conf"

// SambaConf is the parsed /etc/samba/smb.conf. Samba uses the same
// dialect as autofs.conf: bracketed share names (commonly written with
// interior spaces) and "key = value" options, with the "global"
// section holding server-wide settings.
type SambaConf struct {
	*IniConfigFile
}

// NewSambaConf parses smb.conf content.
func NewSambaConf(ctx core.Context) *SambaConf {
	return &SambaConf{ParseIni(ctx)}
}

// Global returns the [global] section, which may be absent in a
// minimal file.
func (c *SambaConf) Global() (Section, bool) {
	return c.Get("global")
}

func init() {
	Register(SambaConfPath, func(ctx core.Context) ConfigFile {
		return NewSambaConf(ctx)
	})
}
