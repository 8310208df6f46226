package handlers

// AppHandlers bundles every handler the router mounts.
type AppHandlers struct {
	Account    *AccountHandler
	Profile    *ProfileHandler
	Settings   *SettingsHandler
	Moderation *ModerationHandler
}
