// File: handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups every route handler for registration.
type HandlerBundle struct {
	// Voice webhook.
	VoiceTurnHandler gin.HandlerFunc

	// Call triggers.
	StartBulkCallsHandler gin.HandlerFunc
	CallBusinessHandler   gin.HandlerFunc

	// Business CRUD.
	ListBusinessesHandler   gin.HandlerFunc
	GetBusinessHandler      gin.HandlerFunc
	ImportBusinessesHandler gin.HandlerFunc
	ExportBusinessesHandler gin.HandlerFunc
	UpdateBusinessHandler   gin.HandlerFunc
	ClearBusinessesHandler  gin.HandlerFunc

	// Assets.
	UploadGreetingHandler gin.HandlerFunc
	GetGreetingHandler    gin.HandlerFunc

	// Admin auth.
	AdminLoginHandler gin.HandlerFunc
}
