// @title           Contacts API
// @version         1.0
// @description     Contacts book with per-user ownership, JWT auth, email verification and avatars.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import "contacts_backend/internal/app"

func main() {
	app.Run()
}
