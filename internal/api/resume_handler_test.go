package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"resumekit/internal/database"
	"resumekit/internal/resume"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&database.User{}, &database.Resume{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB) database.User {
	t.Helper()
	user := database.User{Username: "tester", PasswordHash: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedResume(t *testing.T, db *gorm.DB, userID uint, title string) database.Resume {
	t.Helper()
	doc := resume.New(resume.Options{Title: title})
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal document: %v", err)
	}
	record := database.Resume{
		Title:   title,
		Content: datatypes.JSON(data),
		UserID:  userID,
	}
	if err := db.Create(&record).Error; err != nil {
		t.Fatalf("seed resume: %v", err)
	}
	return record
}

func newHandlerContext(t *testing.T, userID uint, method, target string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	c.Request = req
	c.Set("userID", userID)
	return c, w
}

func newTestResumeHandler(db *gorm.DB, maxResumes int) *ResumeHandler {
	return NewResumeHandler(db, nil, nil, ResumeHandlerOptions{MaxResumes: maxResumes})
}

func TestCreateResume_DefaultContent(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	h := newTestResumeHandler(db, 0)

	c, w := newHandlerContext(t, user.ID, http.MethodPost, "/v1/resume", []byte(`{"title":"投递版"}`))
	h.CreateResume(c)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%s", w.Code, w.Body.String())
	}

	var resp resumeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Title != "投递版" {
		t.Fatalf("expected title 投递版 got %q", resp.Title)
	}

	var doc resume.Document
	if err := json.Unmarshal(resp.Content, &doc); err != nil {
		t.Fatalf("decode stored document: %v", err)
	}
	if len(doc.MenuSections) != 5 {
		t.Fatalf("expected 5 default menu sections got %d", len(doc.MenuSections))
	}

	var stored database.User
	if err := db.First(&stored, user.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if stored.ActiveResumeID == nil || *stored.ActiveResumeID != resp.ID {
		t.Fatalf("expected active resume %d got %v", resp.ID, stored.ActiveResumeID)
	}
}

func TestCreateResume_InvalidContent(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	h := newTestResumeHandler(db, 0)

	c, w := newHandlerContext(t, user.ID, http.MethodPost, "/v1/resume", []byte(`{"title":"bad","content":[1,2,3]}`))
	h.CreateResume(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d body=%s", w.Code, w.Body.String())
	}
}

func TestCreateResume_LimitReached(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	h := newTestResumeHandler(db, 2)

	seedResume(t, db, user.ID, "一")
	seedResume(t, db, user.ID, "二")

	c, w := newHandlerContext(t, user.ID, http.MethodPost, "/v1/resume", []byte(`{"title":"三"}`))
	h.CreateResume(c)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d body=%s", w.Code, w.Body.String())
	}
}

func TestGetLatestResume_EmptyReturnsInitialDocument(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	h := newTestResumeHandler(db, 0)

	c, w := newHandlerContext(t, user.ID, http.MethodGet, "/v1/resume/latest", nil)
	h.GetLatestResume(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", w.Code, w.Body.String())
	}

	var resp resumeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != 0 {
		t.Fatalf("expected id 0 got %d", resp.ID)
	}

	var doc resume.Document
	if err := json.Unmarshal(resp.Content, &doc); err != nil {
		t.Fatalf("decode document: %v", err)
	}
	if doc.GlobalSettings.ThemeColor != resume.DefaultThemeColor {
		t.Fatalf("expected default theme color in initial document")
	}
}

func TestGetResume_WrongUser(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db)
	record := seedResume(t, db, owner.ID, "私有")

	intruder := database.User{Username: "intruder", PasswordHash: "x"}
	if err := db.Create(&intruder).Error; err != nil {
		t.Fatalf("seed intruder: %v", err)
	}

	h := newTestResumeHandler(db, 0)
	c, w := newHandlerContext(t, intruder.ID, http.MethodGet, "/v1/resume/"+strconv.Itoa(int(record.ID)), nil)
	c.Params = gin.Params{{Key: "id", Value: strconv.Itoa(int(record.ID))}}
	h.GetResume(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d body=%s", w.Code, w.Body.String())
	}
}

func TestUpdateResume_RejectsInvalidContent(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	record := seedResume(t, db, user.ID, "原始")

	h := newTestResumeHandler(db, 0)
	c, w := newHandlerContext(t, user.ID, http.MethodPut, "/v1/resume/"+strconv.Itoa(int(record.ID)), []byte(`{"title":"改","content":"not-json-object"}`))
	c.Params = gin.Params{{Key: "id", Value: strconv.Itoa(int(record.ID))}}
	h.UpdateResume(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d body=%s", w.Code, w.Body.String())
	}
}

func TestDeleteResume_FallsBackToLatest(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	first := seedResume(t, db, user.ID, "第一份")
	second := seedResume(t, db, user.ID, "第二份")

	if err := db.Model(&database.User{}).Where("id = ?", user.ID).
		Update("active_resume_id", second.ID).Error; err != nil {
		t.Fatalf("set active: %v", err)
	}

	h := newTestResumeHandler(db, 0)
	c, w := newHandlerContext(t, user.ID, http.MethodDelete, "/v1/resume/"+strconv.Itoa(int(second.ID)), nil)
	c.Params = gin.Params{{Key: "id", Value: strconv.Itoa(int(second.ID))}}
	h.DeleteResume(c)
	c.Writer.WriteHeaderNow()

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d body=%s", w.Code, w.Body.String())
	}

	var stored database.User
	if err := db.First(&stored, user.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if stored.ActiveResumeID == nil || *stored.ActiveResumeID != first.ID {
		t.Fatalf("expected fallback to %d got %v", first.ID, stored.ActiveResumeID)
	}
}

func TestPreviewResume_RendersHTML(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)

	doc := resume.New(resume.Options{
		Title: "预览",
		Basic: &resume.BasicInfo{Name: "张三", Title: "工程师"},
	})
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal document: %v", err)
	}
	record := database.Resume{Title: "预览", Content: datatypes.JSON(data), UserID: user.ID}
	if err := db.Create(&record).Error; err != nil {
		t.Fatalf("seed resume: %v", err)
	}

	h := newTestResumeHandler(db, 0)
	c, w := newHandlerContext(t, user.ID, http.MethodGet, "/v1/resume/"+strconv.Itoa(int(record.ID))+"/preview?template=modern", nil)
	c.Params = gin.Params{{Key: "id", Value: strconv.Itoa(int(record.ID))}}
	h.PreviewResume(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected text/html got %q", ct)
	}
	body := w.Body.String()
	if !strings.Contains(body, "<!DOCTYPE html>") {
		t.Fatalf("expected full html document")
	}
	if !strings.Contains(body, "张三") {
		t.Fatalf("expected rendered name in body")
	}
	// modern 布局：主题色侧栏
	if !strings.Contains(body, "grid-column: span 1") {
		t.Fatalf("expected modern sidebar in body")
	}
}

func TestPreviewResume_UnknownTemplateFallsBack(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	record := seedResume(t, db, user.ID, "回落")

	h := newTestResumeHandler(db, 0)

	render := func(template string) string {
		target := "/v1/resume/" + strconv.Itoa(int(record.ID)) + "/preview"
		if template != "" {
			target += "?template=" + template
		}
		c, w := newHandlerContext(t, user.ID, http.MethodGet, target, nil)
		c.Params = gin.Params{{Key: "id", Value: strconv.Itoa(int(record.ID))}}
		h.PreviewResume(c)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 got %d", w.Code)
		}
		return w.Body.String()
	}

	if render("does-not-exist") != render("classic") {
		t.Fatalf("unknown template should render identically to classic")
	}
}

func TestGetDownloadLink_NotReady(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	record := seedResume(t, db, user.ID, "未导出")

	h := newTestResumeHandler(db, 0)
	c, w := newHandlerContext(t, user.ID, http.MethodGet, "/v1/resume/"+strconv.Itoa(int(record.ID))+"/download-link", nil)
	c.Params = gin.Params{{Key: "id", Value: strconv.Itoa(int(record.ID))}}
	h.GetDownloadLink(c)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d body=%s", w.Code, w.Body.String())
	}
}

func TestUserIDFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if _, ok := userIDFromContext(c); ok {
		t.Fatalf("expected missing userID")
	}

	c.Set("userID", uint(7))
	if id, ok := userIDFromContext(c); !ok || id != 7 {
		t.Fatalf("expected 7 got %d ok=%v", id, ok)
	}

	c.Set("userID", int64(-1))
	if _, ok := userIDFromContext(c); ok {
		t.Fatalf("expected negative id rejected")
	}
}
