package client

import (
	"context"

	"github.com/homeclimate-io/multimatic/internal/mapper"
	"github.com/homeclimate-io/multimatic/internal/payloads"
	"github.com/homeclimate-io/multimatic/internal/urls"
	"github.com/homeclimate-io/multimatic/pkg/multimatic"
)

// GetRooms returns all rooms of a room-by-room installation.
func (m *Manager) GetRooms(ctx context.Context) ([]multimatic.Room, error) {
	return readWithRetry(ctx, m, func(ctx context.Context) ([]multimatic.Room, error) {
		raw, err := m.get(ctx, urls.Rooms)
		if err != nil {
			return nil, err
		}

		rooms, err := mapper.Rooms(raw)
		if err != nil {
			return nil, wrongResponse(err, raw)
		}

		return rooms, nil
	})
}

// GetRoom returns a single room.
func (m *Manager) GetRoom(ctx context.Context, roomID string) (*multimatic.Room, error) {
	return readWithRetry(ctx, m, func(ctx context.Context) (*multimatic.Room, error) {
		raw, err := m.get(ctx, func(serial string) string {
			return urls.Room(serial, roomID)
		})
		if err != nil {
			return nil, err
		}

		room, err := mapper.Room(raw)
		if err != nil {
			return nil, wrongResponse(err, raw)
		}

		return room, nil
	})
}

// SetRoomOperatingMode switches a room's operating mode. An unknown mode or
// a missing room id is skipped without a request.
func (m *Manager) SetRoomOperatingMode(ctx context.Context, roomID string, mode multimatic.OperatingMode) error {
	if roomID == "" || !multimatic.SupportsMode(multimatic.RoomModes, mode) {
		return m.skipWrite("skipping room operating mode write", map[string]interface{}{
			"room": roomID,
			"mode": string(mode),
		})
	}

	return m.put(ctx, func(serial string) string {
		return urls.RoomOperatingMode(serial, roomID)
	}, payloads.NewRoomOperatingMode(mode))
}

// SetRoomSetpointTemperature sets a room's target temperature, rounded to
// the backend's half-degree grid.
func (m *Manager) SetRoomSetpointTemperature(ctx context.Context, roomID string, temperature float64) error {
	if roomID == "" {
		return m.skipWrite("skipping room setpoint write", map[string]interface{}{"room": roomID})
	}

	return m.put(ctx, func(serial string) string {
		return urls.RoomTemperatureSetpoint(serial, roomID)
	}, payloads.NewRoomTemperatureSetpoint(temperature))
}

// SetRoomQuickVeto overrides a room's schedule with a temporary setpoint
// for the veto's duration.
func (m *Manager) SetRoomQuickVeto(ctx context.Context, roomID string, veto multimatic.QuickVeto) error {
	if roomID == "" {
		return m.skipWrite("skipping room quick veto write", map[string]interface{}{"room": roomID})
	}

	return m.put(ctx, func(serial string) string {
		return urls.RoomQuickVeto(serial, roomID)
	}, payloads.NewRoomQuickVeto(veto))
}

// RemoveRoomQuickVeto removes a room's quick veto. Removing a veto that is
// not active succeeds.
func (m *Manager) RemoveRoomQuickVeto(ctx context.Context, roomID string) error {
	if roomID == "" {
		return m.skipWrite("skipping room quick veto removal", map[string]interface{}{"room": roomID})
	}

	return m.del(ctx, func(serial string) string {
		return urls.RoomQuickVeto(serial, roomID)
	})
}
