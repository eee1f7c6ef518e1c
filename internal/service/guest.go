package service

import (
	"fmt"
	"time"

	"github.com/itsmortoncornelius/guerilla-prose-backend/internal/model"
)

// PlaceholderIfBlank returns the submitted user unchanged unless every
// identity field is empty, in which case a generated guest profile is
// substituted. The nanosecond component keeps two guests created in the
// same process from ending up with the same name.
func PlaceholderIfBlank(user model.User, now time.Time) model.User {
	if user.Firstname != "" || user.Lastname != "" || user.Email != "" {
		return user
	}

	return model.User{
		ID:        user.ID,
		Firstname: now.Month().String() + "i",
		Lastname:  fmt.Sprintf("%d-Guest", now.Nanosecond()),
		Email:     "",
	}
}
