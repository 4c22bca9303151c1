package model

// Settings is the flat flag map behind the settings view. The field set
// is the union across product revisions; older exports simply omit the
// newer keys and pick up the defaults on import.
type Settings struct {
	HighContrast        bool `json:"highContrast"`
	FontSmoothing       bool `json:"fontSmoothing"`
	AutoLaunch          bool `json:"autoLaunch"`
	MinimizeToTray      bool `json:"minimizeToTray"`
	GlobalHotkey        bool `json:"globalHotkey"`
	NativeNotifications bool `json:"nativeNotifications"`
	MiniMode            bool `json:"miniMode"`
	AutoRollover        bool `json:"autoRollover"`
	CompletionSound     bool `json:"completionSound"`
	QuickAddHotkey      bool `json:"quickAddHotkey"`
	SearchHotkey        bool `json:"searchHotkey"`
	FilterOverdueHotkey bool `json:"filterOverdueHotkey"`
	CompactMode         bool `json:"compactMode"`
}

func DefaultSettings() Settings {
	return Settings{
		HighContrast:        false,
		FontSmoothing:       true,
		AutoLaunch:          false,
		MinimizeToTray:      false,
		GlobalHotkey:        false,
		NativeNotifications: false,
		MiniMode:            true,
		AutoRollover:        false,
		CompletionSound:     true,
		QuickAddHotkey:      true,
		SearchHotkey:        true,
		FilterOverdueHotkey: true,
		CompactMode:         false,
	}
}
