package routes

import (
	"net/http"
	"time"

	"github.com/ketoo27/Evolution-project/controllers/auth"
	"github.com/ketoo27/Evolution-project/controllers/users"
	"github.com/ketoo27/Evolution-project/middleware"

	"github.com/gorilla/mux"
)

// UsersRoutes registers all user-facing routes on the given subrouter.
func UsersRoutes(api *mux.Router) {
	// Login/register limiter: 60 per IP per 5 minutes
	loginLimiter := middleware.NewIPRateLimiter(60, 5*time.Minute)
	// Authenticated API limiter: 120 per user per minute
	userLimiter := middleware.NewUserRateLimiter(120, 60)

	// Register & Login
	api.Handle("/register", loginLimiter.Middleware(http.HandlerFunc(auth.RegisterHandler))).Methods(http.MethodPost)
	api.Handle("/login", loginLimiter.Middleware(http.HandlerFunc(auth.LoginHandler))).Methods(http.MethodPost)
	api.Handle("/refresh", loginLimiter.Middleware(http.HandlerFunc(auth.RefreshHandler))).Methods(http.MethodPost)
	api.Handle("/logout", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(auth.LogoutHandler)))).Methods(http.MethodPost)
	api.Handle("/logout-all", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(auth.LogoutAllHandler)))).Methods(http.MethodPost)

	// Profile
	api.Handle("/user/profile", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.GetProfileHandler)))).Methods(http.MethodGet)
	api.Handle("/user/profile", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.UpdateProfileHandler)))).Methods(http.MethodPut)

	// Task cards
	api.Handle("/tasks", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.CreateTaskHandler)))).Methods(http.MethodPost)
	api.Handle("/tasks", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.ListTasksHandler)))).Methods(http.MethodGet)
	api.Handle("/tasks/{id:[0-9]+}", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.GetTaskHandler)))).Methods(http.MethodGet)
	api.Handle("/tasks/{id:[0-9]+}", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.UpdateTaskHandler)))).Methods(http.MethodPut)
	api.Handle("/tasks/{id:[0-9]+}", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.DeleteTaskHandler)))).Methods(http.MethodDelete)

	// Habits
	api.Handle("/habits", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.CreateHabitHandler)))).Methods(http.MethodPost)
	api.Handle("/habits", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.ListHabitsHandler)))).Methods(http.MethodGet)
	api.Handle("/habits/{id:[0-9]+}", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.UpdateHabitHandler)))).Methods(http.MethodPut)
	api.Handle("/habits/{id:[0-9]+}", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.DeleteHabitHandler)))).Methods(http.MethodDelete)

	// Habit trackers (today's rows; rollover materializes them at login)
	api.Handle("/habittrackers", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.ListTodayTrackersHandler)))).Methods(http.MethodGet)
	api.Handle("/habittrackers/{id:[0-9]+}", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.UpdateTrackerHandler)))).Methods(http.MethodPut)

	// Events
	api.Handle("/events", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.CreateEventHandler)))).Methods(http.MethodPost)
	api.Handle("/events", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.ListEventsHandler)))).Methods(http.MethodGet)
	api.Handle("/events/{id:[0-9]+}", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.UpdateEventHandler)))).Methods(http.MethodPut)
	api.Handle("/events/{id:[0-9]+}", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.DeleteEventHandler)))).Methods(http.MethodDelete)

	// Journal (one entry per calendar day)
	api.Handle("/journalentries", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.CreateJournalEntryHandler)))).Methods(http.MethodPost)
	api.Handle("/journalentries", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.ListJournalEntriesHandler)))).Methods(http.MethodGet)
	api.Handle("/journalentries/today", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.TodayJournalEntryHandler)))).Methods(http.MethodGet)

	// Badges & streak
	api.Handle("/users/badges", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.ListUserBadgesHandler)))).Methods(http.MethodGet)
	api.Handle("/badges", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.ListBadgeCatalogHandler)))).Methods(http.MethodGet)
	api.Handle("/users/streak", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.GetStreakHandler)))).Methods(http.MethodGet)
}
