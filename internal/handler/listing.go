package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"gorm.io/datatypes"

	"github.com/fcurti/falegnameria-backend/dao"
	"github.com/fcurti/falegnameria-backend/dao/model"
	"github.com/fcurti/falegnameria-backend/internal/resputil"
	"github.com/fcurti/falegnameria-backend/internal/util"
	"github.com/fcurti/falegnameria-backend/pkg/logutils"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewListingMgr)
}

// Redirect target of every listing CRUD outcome, anchored to the real-estate
// section of the panel.
const listingsAnchor = "/admin/#immobili"

type ListingMgr struct {
	name string
}

type listingURI struct {
	ID uint `uri:"id" binding:"required"`
}

func NewListingMgr(_ RegisterConfig) Manager {
	return &ListingMgr{name: "listing"}
}

func (mgr *ListingMgr) GetName() string { return mgr.name }

func (mgr *ListingMgr) RegisterPublic(_ *gin.RouterGroup) {}

func (mgr *ListingMgr) RegisterAdmin(g *gin.RouterGroup) {
	g.POST("/listings/add", mgr.AddListing)
	g.POST("/listings/:id/edit", mgr.EditListing)
	g.POST("/listings/:id/delete", mgr.DeleteListing)
}

// listingForm reads and trims the text fields of the add/edit form. PriceRaw
// stays unparsed so validation can report it separately.
type listingForm struct {
	ListingType model.ListingType
	Place       string
	Title       string
	Rooms       string
	Floor       string
	PriceRaw    string
	PriceLabel  string
	Description string
	BulletsRaw  string
}

func readListingForm(c *gin.Context) listingForm {
	return listingForm{
		ListingType: model.ListingType(util.TrimmedForm(c, "listing_type")),
		Place:       util.TrimmedForm(c, "place"),
		Title:       util.TrimmedForm(c, "title"),
		Rooms:       util.TrimmedForm(c, "rooms"),
		Floor:       util.TrimmedForm(c, "floor"),
		PriceRaw:    util.TrimmedForm(c, "price_chf"),
		PriceLabel:  util.TrimmedForm(c, "price_label"),
		Description: util.TrimmedForm(c, "description"),
		BulletsRaw:  util.TrimmedForm(c, "bullets"),
	}
}

func (f listingForm) complete() bool {
	return f.ListingType != "" && f.Place != "" && f.Title != "" &&
		f.Rooms != "" && f.Floor != "" && f.Description != ""
}

// validate flashes and redirects on the first failed check. It returns the
// parsed price and whether the caller may proceed.
func (f listingForm) validate(c *gin.Context) (int, bool) {
	if !f.complete() {
		util.Flash(c, "error", "Compila tutti i campi obbligatori.")
		c.Redirect(http.StatusSeeOther, listingsAnchor)
		return 0, false
	}
	if !f.ListingType.Valid() {
		util.Flash(c, "error", "Tipologia non valida.")
		c.Redirect(http.StatusSeeOther, listingsAnchor)
		return 0, false
	}
	price, err := strconv.Atoi(f.PriceRaw)
	if err != nil {
		util.Flash(c, "error", "Prezzo non valido.")
		c.Redirect(http.StatusSeeOther, listingsAnchor)
		return 0, false
	}
	return price, true
}

// uploadedImages saves every allowed file of the multipart "images" field and
// returns their public paths. Disallowed files are skipped silently.
func uploadedImages(c *gin.Context) []string {
	var images []string
	form, err := c.MultipartForm()
	if err != nil {
		return images
	}
	for _, file := range form.File["images"] {
		if file.Filename == "" || !util.AllowedImage(file.Filename) {
			continue
		}
		saved, err := util.SaveUpload(c, file)
		if err != nil {
			logutils.Log.Errorf("save listing upload: %v", err)
			continue
		}
		images = append(images, saved)
	}
	return images
}

func (mgr *ListingMgr) AddListing(c *gin.Context) {
	form := readListingForm(c)
	price, ok := form.validate(c)
	if !ok {
		return
	}

	images := uploadedImages(c)
	images = append(images, util.SplitLines(c.PostForm("image_urls"))...)

	listing := model.Listing{
		ListingType: form.ListingType,
		Place:       form.Place,
		Title:       form.Title,
		Rooms:       form.Rooms,
		Floor:       form.Floor,
		PriceCHF:    price,
		PriceLabel:  form.PriceLabel,
		Description: form.Description,
		Bullets:     datatypes.NewJSONSlice(util.SplitLines(form.BulletsRaw)),
		Images:      datatypes.NewJSONSlice(images),
	}
	if _, err := dao.CreateListing(c, &listing); err != nil {
		resputil.Error(c, "create listing: "+err.Error(), resputil.NotSpecified)
		return
	}
	util.Flash(c, "success", "Immobile aggiunto.")
	c.Redirect(http.StatusSeeOther, listingsAnchor)
}

func (mgr *ListingMgr) EditListing(c *gin.Context) {
	var uri listingURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}

	existing, err := dao.GetListing(c, uri.ID)
	if err != nil {
		resputil.Error(c, "get listing: "+err.Error(), resputil.NotSpecified)
		return
	}
	if existing == nil {
		util.Flash(c, "error", "Immobile non trovato.")
		c.Redirect(http.StatusSeeOther, listingsAnchor)
		return
	}

	form := readListingForm(c)
	price, ok := form.validate(c)
	if !ok {
		return
	}

	images := append([]string{}, existing.Images...)
	images = append(images, uploadedImages(c)...)
	images = append(images, util.SplitLines(c.PostForm("image_urls"))...)

	if removed := c.PostFormArray("remove_images"); len(removed) > 0 {
		images = lo.Filter(images, func(img string, _ int) bool {
			return !lo.Contains(removed, img)
		})
	}

	listing := model.Listing{
		ID:          uri.ID,
		ListingType: form.ListingType,
		Place:       form.Place,
		Title:       form.Title,
		Rooms:       form.Rooms,
		Floor:       form.Floor,
		PriceCHF:    price,
		PriceLabel:  form.PriceLabel,
		Description: form.Description,
		Bullets:     datatypes.NewJSONSlice(util.SplitLines(form.BulletsRaw)),
		Images:      datatypes.NewJSONSlice(images),
	}
	if err := dao.UpdateListing(c, &listing); err != nil {
		resputil.Error(c, "update listing: "+err.Error(), resputil.NotSpecified)
		return
	}
	util.Flash(c, "success", "Immobile aggiornato.")
	c.Redirect(http.StatusSeeOther, listingsAnchor)
}

func (mgr *ListingMgr) DeleteListing(c *gin.Context) {
	var uri listingURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}

	if err := dao.DeleteListing(c, uri.ID); err != nil {
		resputil.Error(c, "delete listing: "+err.Error(), resputil.NotSpecified)
		return
	}
	util.Flash(c, "success", "Immobile eliminato.")
	c.Redirect(http.StatusSeeOther, listingsAnchor)
}
