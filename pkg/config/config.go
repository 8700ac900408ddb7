package config

import (
	"os"
	"sync"

	"github.com/gin-gonic/gin"
	"k8s.io/klog/v2"
	"sigs.k8s.io/yaml"
)

type Config struct {
	// Port Settings
	Host       string `json:"host"`       // The public domain name of the site.
	ServerAddr string `json:"serverAddr"` // The address the server endpoint binds to.

	Auth struct {
		SessionSecret     string `json:"sessionSecret"`     // HMAC secret for the admin session token and flash cookie.
		AdminPasswordHash string `json:"adminPasswordHash"` // bcrypt hash of the shared admin password. Empty disables login.
	} `json:"auth"`

	SQLite struct {
		Path string `json:"path"` // Path of the database file.
	} `json:"sqlite"`

	Storage struct {
		UploadDir    string `json:"uploadDir"`    // Directory uploaded images are written to.
		UploadPrefix string `json:"uploadPrefix"` // Public URL prefix the upload dir is served under.
	} `json:"storage"`
}

// defaultSessionSecret keeps local runs working without any setup. Admin
// tokens signed with it are forgeable, so production must set SESSION_SECRET.
const defaultSessionSecret = "falegnameria-dev-secret"

var (
	once   sync.Once
	config *Config
)

func GetConfig() *Config {
	once.Do(func() {
		config = initConfig()
	})
	return config
}

func IsDebugMode() bool {
	return gin.Mode() == gin.DebugMode
}

// initConfig reads the yaml configuration file, falling back to defaults when
// the file does not exist. Environment variables override individual fields so
// the server can run on deploy targets where only /tmp is writable.
func initConfig() *Config {
	config := &Config{}
	config.ServerAddr = ":8080"
	config.SQLite.Path = "./database.db"
	config.Storage.UploadDir = "./static/uploads"
	config.Storage.UploadPrefix = "/static/uploads"
	config.Auth.SessionSecret = defaultSessionSecret

	configPath := os.Getenv("CURTI_CONFIG_PATH")
	if configPath == "" {
		configPath = "./etc/config.yaml"
	}
	configFile, err := os.ReadFile(configPath)
	if err == nil {
		if err := yaml.Unmarshal(configFile, config); err != nil {
			panic(err.Error())
		}
	} else if !os.IsNotExist(err) {
		panic(err.Error())
	} else {
		klog.Infof("config file %s not found, using defaults", configPath)
	}

	if secret := os.Getenv("SESSION_SECRET"); secret != "" {
		config.Auth.SessionSecret = secret
	}
	if hash := os.Getenv("ADMIN_PASSWORD_HASH"); hash != "" {
		config.Auth.AdminPasswordHash = hash
	}
	// Read-only deploy targets keep the database on the ephemeral tmpfs.
	if os.Getenv("WRITABLE_TMP") != "" {
		config.SQLite.Path = "/tmp/database.db"
	}

	if config.Auth.SessionSecret == defaultSessionSecret && !IsDebugMode() {
		klog.Warning("SESSION_SECRET is not set, admin session tokens are signed with the built-in development secret")
	}

	return config
}
