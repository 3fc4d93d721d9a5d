package model

import "time"

// HeartRateReading is one timestamped pulse sample
type HeartRateReading struct {
	Timestamp time.Time `json:"timestamp" bson:"timestamp" validate:"required"`
	HeartRate float64   `json:"heartRate" bson:"heartRate" validate:"required"`
}

// Health is embedded in the user document. Field names double as update paths.
type Health struct {
	Weight            *float64           `json:"weight,omitempty" bson:"weight,omitempty" validate:"omitempty,gt=0"`
	StartWeight       *float64           `json:"start_weight,omitempty" bson:"start_weight,omitempty"`
	TargetWeight      *float64           `json:"target_weight,omitempty" bson:"target_weight,omitempty"`
	Height            *float64           `json:"height,omitempty" bson:"height,omitempty" validate:"omitempty,gt=0"`
	ActivityLevel     string             `json:"activity_level,omitempty" bson:"activity_level,omitempty"`
	TargetExercise    string             `json:"target_exercise,omitempty" bson:"target_exercise,omitempty"`
	BMI               *float64           `json:"bmi,omitempty" bson:"bmi,omitempty"`
	Steps             *float64           `json:"steps,omitempty" bson:"steps,omitempty"`
	TargetSteps       *float64           `json:"target_steps,omitempty" bson:"target_steps,omitempty"`
	CaloriesBurned    *float64           `json:"caloriesBurned,omitempty" bson:"caloriesBurned,omitempty"`
	SleepHours        *float64           `json:"sleepHours,omitempty" bson:"sleepHours,omitempty"`
	HeartRateReadings []HeartRateReading `json:"heartRateReadings,omitempty" bson:"heartRateReadings,omitempty" validate:"omitempty,dive"`
}

// Device links the user to an external wearable/resource
type Device struct {
	UserID      string `json:"user_id" bson:"user_id" validate:"required"`
	Resource    string `json:"resource,omitempty" bson:"resource,omitempty"`
	ReferenceID string `json:"reference_id,omitempty" bson:"reference_id,omitempty"`
	Lan         string `json:"lan,omitempty" bson:"lan,omitempty"`
}

// UserEntity is the storage-agnostic user record
type UserEntity struct {
	ID           string     `json:"_id"`
	Name         string     `json:"name"`
	Gender       string     `json:"gender,omitempty"`
	DateOfBirth  *time.Time `json:"dateOfBirth,omitempty"`
	Email        string     `json:"email,omitempty"`
	PasswordHash string     `json:"-"`
	AuthToken    string     `json:"authToken,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
	Health       *Health    `json:"health,omitempty"`
	Device       *Device    `json:"device,omitempty"`
}

// UserFilter for querying users
type UserFilter struct {
	ID    string
	Email string
}

// CreateUserRequest for POST /user
type CreateUserRequest struct {
	Name        string  `json:"name" validate:"required"`
	Gender      string  `json:"gender"`
	DateOfBirth string  `json:"dateOfBirth"`
	Email       string  `json:"email" validate:"omitempty,contains=@"`
	Password    string  `json:"password"`
	Health      *Health `json:"health"`
	Device      *Device `json:"device"`
}

// CreateUserMessages maps a failing field namespace to the client message.
var CreateUserMessages = map[string]string{
	"Name":          "Name is required and must be a non-empty string.",
	"Email":         "Invalid email format.",
	"Health.Weight": "Weight must be a positive number.",
	"Health.Height": "Height must be a positive number.",
	"Device.UserID": "Device user_id is required.",
}

type CreateUserResponse struct {
	Message string      `json:"message"`
	User    *UserEntity `json:"user"`
}

type UpdateUserResponse struct {
	Message string      `json:"message"`
	User    *UserEntity `json:"user"`
}

// LoginRequest for user login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,contains=@"`
	Password string `json:"password" validate:"required"`
}

var LoginMessages = map[string]string{
	"Email":    "Invalid email format.",
	"Password": "Password is required and must be a string.",
}

type LoginResponse struct {
	Message   string `json:"message"`
	AuthToken string `json:"authToken"`
}
