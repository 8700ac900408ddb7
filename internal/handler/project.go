package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fcurti/falegnameria-backend/dao"
	"github.com/fcurti/falegnameria-backend/dao/model"
	"github.com/fcurti/falegnameria-backend/internal/resputil"
	"github.com/fcurti/falegnameria-backend/internal/util"
	"github.com/fcurti/falegnameria-backend/pkg/logutils"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewProjectMgr)
}

// Redirect target of every project CRUD outcome, anchored to the projects
// section of the panel.
const projectsAnchor = "/admin/#progetti"

type ProjectMgr struct {
	name string
}

type projectURI struct {
	ID uint `uri:"id" binding:"required"`
}

func NewProjectMgr(_ RegisterConfig) Manager {
	return &ProjectMgr{name: "project"}
}

func (mgr *ProjectMgr) GetName() string { return mgr.name }

func (mgr *ProjectMgr) RegisterPublic(_ *gin.RouterGroup) {}

func (mgr *ProjectMgr) RegisterAdmin(g *gin.RouterGroup) {
	g.POST("/projects/add", mgr.AddProject)
	g.POST("/projects/:id/edit", mgr.EditProject)
	g.POST("/projects/:id/delete", mgr.DeleteProject)
}

// projectForm reads and trims the required text fields of the add/edit form.
type projectForm struct {
	Title     string
	Location  string
	Goal      string
	Solution  string
	Materials string
}

func readProjectForm(c *gin.Context) projectForm {
	return projectForm{
		Title:     util.TrimmedForm(c, "title"),
		Location:  util.TrimmedForm(c, "location"),
		Goal:      util.TrimmedForm(c, "goal"),
		Solution:  util.TrimmedForm(c, "solution"),
		Materials: util.TrimmedForm(c, "materials"),
	}
}

func (f projectForm) complete() bool {
	return f.Title != "" && f.Location != "" && f.Goal != "" && f.Solution != "" && f.Materials != ""
}

// savedProjectUpload stores the uploaded "image" file when it carries an
// allowed extension and returns its public path, or "" when nothing was saved.
func savedProjectUpload(c *gin.Context) string {
	file, err := c.FormFile("image")
	if err != nil || file.Filename == "" || !util.AllowedImage(file.Filename) {
		return ""
	}
	saved, err := util.SaveUpload(c, file)
	if err != nil {
		logutils.Log.Errorf("save project upload: %v", err)
		return ""
	}
	return saved
}

func (mgr *ProjectMgr) AddProject(c *gin.Context) {
	form := readProjectForm(c)

	// A saved upload wins; the URL field is only the fallback.
	image := savedProjectUpload(c)
	if image == "" {
		image = util.TrimmedForm(c, "image_url")
	}

	if !form.complete() {
		util.Flash(c, "error", "Compila tutti i campi obbligatori.")
		c.Redirect(http.StatusSeeOther, projectsAnchor)
		return
	}

	project := model.Project{
		Title:     form.Title,
		Location:  form.Location,
		Goal:      form.Goal,
		Solution:  form.Solution,
		Materials: form.Materials,
		Image:     image,
	}
	if _, err := dao.CreateProject(c, &project); err != nil {
		resputil.Error(c, "create project: "+err.Error(), resputil.NotSpecified)
		return
	}
	util.Flash(c, "success", "Progetto aggiunto.")
	c.Redirect(http.StatusSeeOther, projectsAnchor)
}

func (mgr *ProjectMgr) EditProject(c *gin.Context) {
	var uri projectURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}

	existing, err := dao.GetProject(c, uri.ID)
	if err != nil {
		resputil.Error(c, "get project: "+err.Error(), resputil.NotSpecified)
		return
	}
	if existing == nil {
		util.Flash(c, "error", "Progetto non trovato.")
		c.Redirect(http.StatusSeeOther, projectsAnchor)
		return
	}

	form := readProjectForm(c)

	// On edit a submitted URL replaces even a fresh upload.
	image := existing.Image
	if saved := savedProjectUpload(c); saved != "" {
		image = saved
	}
	if imageURL := util.TrimmedForm(c, "image_url"); imageURL != "" {
		image = imageURL
	}

	if !form.complete() {
		util.Flash(c, "error", "Compila tutti i campi obbligatori.")
		c.Redirect(http.StatusSeeOther, projectsAnchor)
		return
	}

	project := model.Project{
		ID:        uri.ID,
		Title:     form.Title,
		Location:  form.Location,
		Goal:      form.Goal,
		Solution:  form.Solution,
		Materials: form.Materials,
		Image:     image,
	}
	if err := dao.UpdateProject(c, &project); err != nil {
		resputil.Error(c, "update project: "+err.Error(), resputil.NotSpecified)
		return
	}
	util.Flash(c, "success", "Progetto aggiornato.")
	c.Redirect(http.StatusSeeOther, projectsAnchor)
}

func (mgr *ProjectMgr) DeleteProject(c *gin.Context) {
	var uri projectURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}

	if err := dao.DeleteProject(c, uri.ID); err != nil {
		resputil.Error(c, "delete project: "+err.Error(), resputil.NotSpecified)
		return
	}
	util.Flash(c, "success", "Progetto eliminato.")
	c.Redirect(http.StatusSeeOther, projectsAnchor)
}
