package main

import (
	"os"

	"promptpilot/backend/internal/app"
)

// @title           PromptPilot API
// @version         1.0
// @description     Git-like version control for conversations: chats with AI replies, immutable commits, fetch/restore, commit history.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	os.Exit(app.Run())
}
