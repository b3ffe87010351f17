// Package integrations serves the static tools & integrations catalog. All
// connect actions are placeholders; nothing here talks to an external
// service.
package integrations

// ConnectStatus labels what the connect button would do.
type ConnectStatus string

const (
	StatusConnect       ConnectStatus = "Connect"
	StatusComingSoon    ConnectStatus = "Coming soon"
	StatusTrainingSoon  ConnectStatus = "Training soon"
	StatusAdminRequired ConnectStatus = "Admin Required"
)

// App is one entry of the agent apps or integrations tabs.
type App struct {
	Name            string        `json:"name"`
	Icon            string        `json:"icon"`
	Description     string        `json:"description"`
	Status          ConnectStatus `json:"status"`
	HasUserTriggers bool          `json:"has_user_triggers,omitempty"`
}

// Catalog groups the three tabs of the tools & integrations view.
type Catalog struct {
	AgentApps    []App `json:"agent_apps"`
	Integrations []App `json:"integrations"`
}

// DefaultCatalog returns the built-in tools & integrations content.
func DefaultCatalog() Catalog {
	return Catalog{
		AgentApps: []App{
			{Name: "Google Drive", Icon: "🗂️", Description: "Store and access files", Status: StatusConnect, HasUserTriggers: true},
			{Name: "HubSpot", Icon: "🎯", Description: "CRM and marketing platform", Status: StatusConnect},
			{Name: "Slack", Icon: "💬", Description: "Team communication", Status: StatusConnect, HasUserTriggers: true},
			{Name: "Notion", Icon: "📝", Description: "Notes and docs", Status: StatusComingSoon},
			{Name: "Gmail", Icon: "✉️", Description: "Email management", Status: StatusConnect, HasUserTriggers: true},
			{Name: "Calendly", Icon: "📅", Description: "Schedule meetings", Status: StatusTrainingSoon},
		},
		Integrations: []App{
			{Name: "Slack", Icon: "💬", Description: "Trigger workflows from Slack messages", Status: StatusConnect},
			{Name: "Zapier", Icon: "⚡", Description: "Connect with 5000+ apps", Status: StatusConnect},
			{Name: "Salesforce", Icon: "☁️", Description: "CRM integration", Status: StatusAdminRequired},
			{Name: "Microsoft Teams", Icon: "👥", Description: "Team collaboration triggers", Status: StatusConnect},
		},
	}
}
