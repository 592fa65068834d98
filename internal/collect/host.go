package collect

import (
	"log/slog"

	"github.com/godbus/dbus/v5"
	"golang.org/x/sys/unix"
)

// HostFacts identifies the host an archive was collected from.
type HostFacts struct {
	Hostname        string `json:"hostname"`
	KernelRelease   string `json:"kernel_release"`
	Machine         string `json:"machine"`
	OperatingSystem string `json:"operating_system,omitempty"`
}

// hostFacts gathers identification facts. uname always works; the
// pretty OS name comes from hostnamed and is dropped when the system
// bus cannot be reached (containers, chroots).
func hostFacts() HostFacts {
	var facts HostFacts

	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		slog.Warn("uname failed", "error", err)
	} else {
		facts.Hostname = unix.ByteSliceToString(uts.Nodename[:])
		facts.KernelRelease = unix.ByteSliceToString(uts.Release[:])
		facts.Machine = unix.ByteSliceToString(uts.Machine[:])
	}

	if os, err := operatingSystemName(); err != nil {
		slog.Debug("hostnamed not available", "error", err)
	} else {
		facts.OperatingSystem = os
	}

	return facts
}

// operatingSystemName asks hostnamed for the OS pretty name, e.g.
// "Red Hat Enterprise Linux 9.4 (Plow)".
func operatingSystemName() (string, error) {
	conn, err := dbus.SystemBus()
	if err != nil {
		return "", err
	}

	obj := conn.Object("org.freedesktop.hostname1", "/org/freedesktop/hostname1")
	variant, err := obj.GetProperty("org.freedesktop.hostname1.OperatingSystemPrettyName")
	if err != nil {
		return "", err
	}

	name, ok := variant.Value().(string)
	if !ok {
		return "", dbus.ErrMsgInvalidArg
	}
	return name, nil
}
