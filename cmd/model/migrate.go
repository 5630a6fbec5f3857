package model

import "fmt"

// AutoMigrate creates or updates every table the service owns.
func AutoMigrate(db interface{}) error {
	type Migrator interface {
		AutoMigrate(dst ...interface{}) error
	}

	migrator, ok := db.(Migrator)
	if !ok {
		return fmt.Errorf("database does not support auto migration")
	}

	return migrator.AutoMigrate(
		&User{},
		&Video{},
		&Comment{},
		&Like{},
		&Tweet{},
		&Playlist{},
		&PlaylistVideo{},
		&Subscription{},
	)
}
