package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SH118415/insights-core/internal/core"
)

const autofsConf = `
#
# Define default options for autofs.
#
[ autofs ]
#
# timeout - set the default mount timeout in secons. The internal
#	    program default is 10 minutes, but the default installed
#	    configuration overrides this and sets the timeout to 5
#	    minutes to be consistent with earlier autofs releases.
#
timeout = 300
#
# browse_mode - maps are browsable by default.
#
browse_mode = no
#
# mount_nfs_default_protocol - specify the default protocol used by
# 			       mount.nfs(8).
#
#mount_nfs_default_protocol = 3
mount_nfs_default_protocol = 4
#
# Define global options for the amd parser within autofs.
#
[ amd ]
#
# Override the internal default with the same timeout that
# is used by the override in the autofs configuration.
#
dismount_interval = 300
#
# map_type = file
#
`

func TestAutoFSConf_Standard(t *testing.T) {
	cfg := NewAutoFSConf(core.Context{Path: AutoFSConfPath, Content: autofsConf})

	autofs, ok := cfg.Get("autofs")
	require.True(t, ok)
	timeout, ok := autofs.Get("timeout")
	require.True(t, ok)
	assert.Equal(t, "300", timeout)

	for key, want := range map[string]string{
		"timeout":                    "300",
		"browse_mode":                "no",
		"mount_nfs_default_protocol": "4",
	} {
		value, ok := cfg.GetKey("autofs", key)
		require.True(t, ok, "autofs/%s", key)
		assert.Equal(t, want, value, "autofs/%s", key)
	}

	value, ok := cfg.GetKey("amd", "dismount_interval")
	require.True(t, ok)
	assert.Equal(t, "300", value)

	// Settings present only in comments must not appear.
	_, ok = cfg.GetKey("amd", "map_type")
	assert.False(t, ok)

	// Sections never declared must not appear.
	_, ok = cfg.Get("nfs")
	assert.False(t, ok)
}

func TestAutoFSConf_Registered(t *testing.T) {
	factory, ok := For(AutoFSConfPath)
	require.True(t, ok)

	cfg := factory(core.Context{Path: AutoFSConfPath, Content: autofsConf})
	value, ok := cfg.GetKey("autofs", "timeout")
	require.True(t, ok)
	assert.Equal(t, "300", value)
}
