package dao

import "github.com/ego-component/egorm"

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(
		&NotificationTemplate{},
		&NotificationRule{},
		&NotificationLog{},
		&StudentNotificationPrefs{},
		&TwilioConfig{},
		&ReminderAttempt{},
		&Session{},
		&Payment{},
		&Student{},
		&Teacher{},
	)
}
