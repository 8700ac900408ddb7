package handler

import "github.com/gin-gonic/gin"

type Manager interface {
	GetName() string
	RegisterPublic(group *gin.RouterGroup)
	RegisterAdmin(group *gin.RouterGroup)
}

// RegisterConfig is passed to every manager constructor at registration time.
type RegisterConfig struct{}

type Register func(conf RegisterConfig) Manager

// Registers collects the manager constructors of all handler files.
var Registers []Register
