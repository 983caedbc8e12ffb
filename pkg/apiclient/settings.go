package apiclient

import (
	"context"
	"net/http"

	"closecart/internal/domain/entity"
	"closecart/pkg/staged"
)

// SettingsEditor stages the three settings sections of a shop. Each section
// keeps its own saved and working snapshots, saves through its own endpoint,
// and can be discarded without touching the others.
type SettingsEditor struct {
	client *Client

	Channels      *staged.Section[entity.NotificationChannels]
	Notifications *staged.Section[entity.NotificationToggles]
	Chat          *staged.Section[entity.ChatSettings]
}

// LoadSettings fetches the current settings and hydrates a clean editor.
func (c *Client) LoadSettings(ctx context.Context) (*SettingsEditor, error) {
	var settings entity.ShopSettings
	if err := c.do(ctx, http.MethodGet, "/settings", nil, &settings); err != nil {
		return nil, err
	}

	return &SettingsEditor{
		client:        c,
		Channels:      staged.New(settings.Channels),
		Notifications: staged.New(settings.Notifications),
		Chat:          staged.New(settings.Chat),
	}, nil
}

// Dirty reports whether any section has unsaved changes.
func (e *SettingsEditor) Dirty() bool {
	return e.Channels.IsDirty() || e.Notifications.IsDirty() || e.Chat.IsDirty()
}

// DiscardAll rolls every section back to its last saved value.
func (e *SettingsEditor) DiscardAll() {
	e.Channels.Discard()
	e.Notifications.Discard()
	e.Chat.Discard()
}

// SaveChannels persists the channel selection. A clean section returns
// staged.ErrNotDirty without a request.
func (e *SettingsEditor) SaveChannels(ctx context.Context) error {
	return e.Channels.Save(ctx, func(ctx context.Context, channels entity.NotificationChannels) (entity.NotificationChannels, error) {
		var settings entity.ShopSettings
		if err := e.client.do(ctx, http.MethodPut, "/settings/channels", channels, &settings); err != nil {
			return channels, err
		}

		return settings.Channels, nil
	})
}

// SaveNotifications persists the per-event notification toggles.
func (e *SettingsEditor) SaveNotifications(ctx context.Context) error {
	return e.Notifications.Save(ctx, func(ctx context.Context, toggles entity.NotificationToggles) (entity.NotificationToggles, error) {
		var settings entity.ShopSettings
		if err := e.client.do(ctx, http.MethodPut, "/settings/notifications", toggles, &settings); err != nil {
			return toggles, err
		}

		return settings.Notifications, nil
	})
}

// SaveChat persists the chat preferences.
func (e *SettingsEditor) SaveChat(ctx context.Context) error {
	return e.Chat.Save(ctx, func(ctx context.Context, chat entity.ChatSettings) (entity.ChatSettings, error) {
		var settings entity.ShopSettings
		if err := e.client.do(ctx, http.MethodPut, "/settings/chat", chat, &settings); err != nil {
			return chat, err
		}

		return settings.Chat, nil
	})
}
