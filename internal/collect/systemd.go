package collect

import (
	"context"
	"fmt"

	systemd "github.com/coreos/go-systemd/v22/dbus"
)

// UnitState is the collected state of one systemd unit.
type UnitState struct {
	Name        string `json:"name"`
	ActiveState string `json:"active_state"`
	SubState    string `json:"sub_state"`
}

// collectUnits lists loaded systemd units over the system bus.
func collectUnits(ctx context.Context) ([]UnitState, error) {
	conn, err := systemd.NewSystemConnectionContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to systemd: %w", err)
	}
	defer conn.Close()

	units, err := conn.ListUnitsContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}

	states := make([]UnitState, 0, len(units))
	for _, unit := range units {
		states = append(states, UnitState{
			Name:        unit.Name,
			ActiveState: unit.ActiveState,
			SubState:    unit.SubState,
		})
	}
	return states, nil
}
