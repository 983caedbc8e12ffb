// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ShopSettings groups the notification and chat preferences of a shop.
// Each nested struct is an independently savable dashboard section; saving
// one section never touches the others.
type ShopSettings struct {
	ShopID        uuid.UUID           // The ID of the shop these settings belong to.
	Channels      NotificationChannels // How the owner wants to be reached.
	Notifications NotificationToggles  // Which events trigger a notification.
	Chat          ChatSettings         // Customer chat behavior.
	UpdatedAt     time.Time            // Timestamp of the last modification.
}

// NotificationChannels selects the delivery channels for notifications.
type NotificationChannels struct {
	Email bool `json:"email"`
	Push  bool `json:"push"`
	SMS   bool `json:"sms"`
}

// NotificationToggles enables or disables individual notification kinds.
type NotificationToggles struct {
	// Order notifications.
	NewOrder           bool `json:"newOrder"`
	OrderUpdates       bool `json:"orderUpdates"`
	OrderCancellations bool `json:"orderCancellations"`

	// Ad performance alerts.
	LowEngagement  bool `json:"lowEngagement"`
	BudgetAlerts   bool `json:"budgetAlerts"`
	CampaignEnding bool `json:"campaignEnding"`

	// Customer messages.
	CustomerChat    bool `json:"customerChat"`
	CustomerReviews bool `json:"customerReviews"`

	// Marketing notifications.
	MarketingEmails    bool `json:"marketingEmails"`
	PushNotifications  bool `json:"pushNotifications"`
	PromotionalAlerts  bool `json:"promotionalAlerts"`
}

// ChatSettings controls the customer chat widget.
type ChatSettings struct {
	AutoReply         bool     `json:"autoReply"`
	ShowOnlineStatus  bool     `json:"showOnlineStatus"`
	NotifyWhenOffline bool     `json:"notifyWhenOffline"`
	QuickReplies      []string `json:"quickReplies"`
}

// DefaultShopSettings returns the settings a freshly registered shop starts with.
func DefaultShopSettings(shopID uuid.UUID) *ShopSettings {
	return &ShopSettings{
		ShopID: shopID,
		Channels: NotificationChannels{
			Email: true,
			Push:  true,
			SMS:   false,
		},
		Notifications: NotificationToggles{
			NewOrder:           true,
			OrderUpdates:       true,
			OrderCancellations: true,
			LowEngagement:      true,
			BudgetAlerts:       true,
			CampaignEnding:     false,
			CustomerChat:       true,
			CustomerReviews:    true,
			MarketingEmails:    false,
			PushNotifications:  true,
			PromotionalAlerts:  false,
		},
		Chat: ChatSettings{
			AutoReply:         true,
			ShowOnlineStatus:  true,
			NotifyWhenOffline: true,
			QuickReplies: []string{
				"Thanks for your message!",
				"We'll get back to you soon.",
				"How can I help you today?",
			},
		},
	}
}
