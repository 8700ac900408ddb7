package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/fcurti/falegnameria-backend/dao"
	"github.com/fcurti/falegnameria-backend/internal/resputil"
	"github.com/fcurti/falegnameria-backend/internal/util"
	"github.com/fcurti/falegnameria-backend/pkg/config"
	"github.com/fcurti/falegnameria-backend/pkg/logutils"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewAuthMgr)
}

type AuthMgr struct {
	name     string
	tokenMgr *util.TokenManager
}

func NewAuthMgr(_ RegisterConfig) Manager {
	return &AuthMgr{
		name:     "auth",
		tokenMgr: util.GetTokenMgr(),
	}
}

func (mgr *AuthMgr) GetName() string { return mgr.name }

func (mgr *AuthMgr) RegisterPublic(g *gin.RouterGroup) {
	g.GET("/admin/login", mgr.LoginPage)
	g.POST("/admin/login", mgr.Login)
	g.GET("/admin/logout", mgr.Logout)
}

func (mgr *AuthMgr) RegisterAdmin(g *gin.RouterGroup) {
	g.GET("/", mgr.Panel)
}

// LoginPage returns the login page payload: pending flash messages and
// whether a valid session already exists.
func (mgr *AuthMgr) LoginPage(c *gin.Context) {
	authenticated := false
	if cookie, err := c.Cookie(util.SessionCookieName); err == nil {
		if info, err := mgr.tokenMgr.CheckSession(cookie); err == nil && info.Admin {
			authenticated = true
		}
	}
	resputil.Success(c, gin.H{
		"authenticated": authenticated,
		"flashes":       util.TakeFlashes(c),
	})
}

// Login compares the submitted password with the configured bcrypt hash. A
// missing hash disables login entirely.
func (mgr *AuthMgr) Login(c *gin.Context) {
	password := c.PostForm("password")
	adminHash := config.GetConfig().Auth.AdminPasswordHash

	if adminHash == "" {
		util.Flash(c, "error", "Nessuna password admin configurata.")
		c.Redirect(http.StatusSeeOther, "/admin/login")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(adminHash), []byte(password)); err != nil {
		logutils.Log.Warn("admin login rejected")
		util.Flash(c, "error", "Password errata.")
		c.Redirect(http.StatusSeeOther, "/admin/login")
		return
	}

	token, err := mgr.tokenMgr.CreateSession()
	if err != nil {
		resputil.Error(c, "create session: "+err.Error(), resputil.NotSpecified)
		return
	}
	c.SetCookie(util.SessionCookieName, token, int(util.SessionTTL.Seconds()), "/", "", false, true)
	util.Flash(c, "success", "Accesso effettuato.")
	c.Redirect(http.StatusSeeOther, "/admin/")
}

func (mgr *AuthMgr) Logout(c *gin.Context) {
	c.SetCookie(util.SessionCookieName, "", -1, "/", "", false, true)
	util.Flash(c, "success", "Logout effettuato.")
	c.Redirect(http.StatusSeeOther, "/admin/login")
}

// Panel returns the admin panel payload: both full collections plus pending
// flash messages.
func (mgr *AuthMgr) Panel(c *gin.Context) {
	projects, err := dao.ListProjects(c)
	if err != nil {
		resputil.Error(c, "list projects: "+err.Error(), resputil.NotSpecified)
		return
	}
	listings, err := dao.ListListings(c)
	if err != nil {
		resputil.Error(c, "list listings: "+err.Error(), resputil.NotSpecified)
		return
	}
	resputil.Success(c, gin.H{
		"projects": projects,
		"listings": listings,
		"flashes":  util.TakeFlashes(c),
	})
}
