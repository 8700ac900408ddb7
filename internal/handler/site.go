package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/fcurti/falegnameria-backend/dao"
	"github.com/fcurti/falegnameria-backend/internal/resputil"
	"github.com/fcurti/falegnameria-backend/internal/util"
	"github.com/fcurti/falegnameria-backend/pkg/logutils"
	"github.com/fcurti/falegnameria-backend/pkg/sitedata"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewSiteMgr)
}

// Number of projects shown on the home page.
const homeProjectCount = 3

type SiteMgr struct {
	name string
}

func NewSiteMgr(_ RegisterConfig) Manager {
	return &SiteMgr{name: "site"}
}

func (mgr *SiteMgr) GetName() string { return mgr.name }

func (mgr *SiteMgr) RegisterPublic(g *gin.RouterGroup) {
	g.GET("/", mgr.Home)
	g.GET("/about", mgr.About)
	g.GET("/projects", mgr.Projects)
	g.GET("/products", mgr.Products)
	g.GET("/real-estate", mgr.RealEstate)
	g.GET("/contact", mgr.ContactPage)
	g.POST("/contact", mgr.Contact)
}

func (mgr *SiteMgr) RegisterAdmin(_ *gin.RouterGroup) {}

func (mgr *SiteMgr) Home(c *gin.Context) {
	projects, err := dao.RecentProjects(c, homeProjectCount)
	if err != nil {
		resputil.Error(c, "list recent projects: "+err.Error(), resputil.NotSpecified)
		return
	}
	resputil.Success(c, gin.H{
		"company":  sitedata.CompanyInfo,
		"services": sitedata.Services[:3],
		"projects": projects,
		"images":   sitedata.Images,
	})
}

func (mgr *SiteMgr) About(c *gin.Context) {
	resputil.Success(c, gin.H{
		"company": sitedata.CompanyInfo,
		"about":   sitedata.AboutInfo,
	})
}

func (mgr *SiteMgr) Projects(c *gin.Context) {
	projects, err := dao.ListProjects(c)
	if err != nil {
		resputil.Error(c, "list projects: "+err.Error(), resputil.NotSpecified)
		return
	}
	resputil.Success(c, gin.H{
		"projects": projects,
		"images":   sitedata.Images,
	})
}

func (mgr *SiteMgr) Products(c *gin.Context) {
	resputil.Success(c, gin.H{
		"products": sitedata.Products,
		"usfaURL":  sitedata.USFAProductsURL,
	})
}

func (mgr *SiteMgr) RealEstate(c *gin.Context) {
	listings, err := dao.ListListings(c)
	if err != nil {
		resputil.Error(c, "list listings: "+err.Error(), resputil.NotSpecified)
		return
	}
	resputil.Success(c, gin.H{
		"listings": listings,
		"company":  sitedata.CompanyInfo,
	})
}

type contactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func (mgr *SiteMgr) ContactPage(c *gin.Context) {
	resputil.Success(c, gin.H{
		"success": false,
		"form":    contactForm{},
	})
}

// Contact validates the inquiry and logs it. Nothing is persisted and no mail
// is sent.
func (mgr *SiteMgr) Contact(c *gin.Context) {
	form := contactForm{
		Name:    util.TrimmedForm(c, "name"),
		Email:   util.TrimmedForm(c, "email"),
		Phone:   util.TrimmedForm(c, "phone"),
		Message: util.TrimmedForm(c, "message"),
	}

	success := form.Name != "" && form.Email != "" && form.Message != ""
	if success {
		logutils.Log.WithFields(logutils.Fields{
			"name":  form.Name,
			"email": form.Email,
			"phone": form.Phone,
		}).Info("contact form submission")
	}

	resputil.Success(c, gin.H{
		"success": success,
		"form":    form,
	})
}
