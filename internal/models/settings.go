package models

// Settings represents application-wide demo settings
type Settings struct {
	DailyGoal                    int    `json:"daily_goal"`                     // daily step target
	MorningNotificationTime      string `json:"morning_notification_time"`      // display clock, e.g. "8:00 AM"
	EveningNotificationTime      string `json:"evening_notification_time"`      // display clock, e.g. "6:30 PM"
	NotificationFrequency        int    `json:"notification_frequency"`         // motivations per day
	RandomizeTiming              bool   `json:"randomize_timing"`               // jitter notification times
	ShowStreakOnHome             bool   `json:"show_streak_on_home"`            // whether the home tab shows the streak ring
	EnableMorningNotifications   bool   `json:"enable_morning_notifications"`   // morning window on/off
	EnableAfternoonNotifications bool   `json:"enable_afternoon_notifications"` // afternoon window on/off
	EnableEveningNotifications   bool   `json:"enable_evening_notifications"`   // evening window on/off
}
