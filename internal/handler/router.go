package handler

import "github.com/wb-go/wbf/ginext"

// NewRouter wires the API. The health route is registered before the auth
// middleware so liveness probes do not need the admin token; everything
// else requires it.
func NewRouter(reminderHandler *ReminderHandler, adminToken string) *ginext.Engine {
	router := ginext.New("release")

	router.Use(MetricsMiddleware)
	router.GET("/health", reminderHandler.Health)

	router.Use(AuthMiddleware(adminToken))
	router.GET("/reminders", reminderHandler.ListReminders)
	router.POST("/reminders", reminderHandler.CreateReminder)
	router.GET("/reminders/:id", reminderHandler.GetReminder)
	router.PUT("/reminders/:id", reminderHandler.UpdateReminder)
	router.DELETE("/reminders/:id", reminderHandler.DeleteReminder)
	router.POST("/reminders/:id/toggle", reminderHandler.ToggleReminder)
	router.POST("/check", reminderHandler.RunCheck)

	return router
}
