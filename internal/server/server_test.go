package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"medbid-backend/internal/config"
	"medbid-backend/internal/database"
	"medbid-backend/internal/models"
	"medbid-backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestServer(t *testing.T) *Server {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	cfg := &config.Config{
		ListenPort:  "8080",
		DatabaseURL: "test",
		AdminEmail:  "admin@medbid.io",
		AdminPasswd: "topsecret",
		AdminRole:   "superadmin",
		AppName:     "MedBid",
	}
	return New(cfg, store.New(db), zap.NewNop())
}

func doJSON(s *Server, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func signup(t *testing.T, s *Server, name, email, passwd string) map[string]any {
	t.Helper()
	w := doJSON(s, http.MethodPost, "/patient/signup", gin.H{
		"name": name, "emailid": email, "passwd": passwd,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeBody(t, w)
}

func createHospital(t *testing.T, s *Server, name string) uint {
	t.Helper()
	w := doJSON(s, http.MethodPost, "/hospitals/", gin.H{"name": name})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return uint(decodeBody(t, w)["id"].(float64))
}

func createBid(t *testing.T, s *Server, patientID, hospitalID uint) *httptest.ResponseRecorder {
	t.Helper()
	return doJSON(s, http.MethodPost, "/patient/create-bid", gin.H{
		"patient_id":         patientID,
		"medical_conditions": "diabetes",
		"surgery_needed":     "bypass",
		"surgery_area":       "cardiac",
		"surgery_date":       "2025-01-01",
		"hospital_id":        hospitalID,
	})
}

func TestRoot(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(s, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "MedBid", body["app"])
	assert.Equal(t, "running", body["msg"])
}

func TestSignup(t *testing.T) {
	s := newTestServer(t)

	body := signup(t, s, "Ann", "ann@x.com", "p1")
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Signup successful", body["message"])
	assert.Equal(t, "patient", body["role"])

	patient := body["patient"].(map[string]any)
	assert.Equal(t, "Ann", patient["name"])
	assert.Equal(t, "ann@x.com", patient["emailid"])
	assert.NotZero(t, patient["id"])
	assert.NotContains(t, patient, "passwd")

	// Same email again, regardless of other fields.
	w := doJSON(s, http.MethodPost, "/patient/signup", gin.H{
		"name": "Other", "emailid": "ann@x.com", "passwd": "p2",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email already registered", decodeBody(t, w)["message"])
}

func TestSignupValidation(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(s, http.MethodPost, "/patient/signup", gin.H{
		"name": "Ann", "emailid": "not-an-email", "passwd": "p1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(s, http.MethodPost, "/patient/signup", gin.H{"name": "Ann"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	s := newTestServer(t)
	signup(t, s, "Ann", "ann@x.com", "p1")

	w := doJSON(s, http.MethodPost, "/patient/login", gin.H{"emailid": "ann@x.com", "passwd": "p1"})
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Login successful", body["message"])
	assert.Equal(t, "patient", body["role"])

	// Wrong password and unknown email answer identically.
	w = doJSON(s, http.MethodPost, "/patient/login", gin.H{"emailid": "ann@x.com", "passwd": "P1"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password", decodeBody(t, w)["message"])

	w = doJSON(s, http.MethodPost, "/patient/login", gin.H{"emailid": "nobody@x.com", "passwd": "p1"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password", decodeBody(t, w)["message"])
}

func TestGetPatientByEmail(t *testing.T) {
	s := newTestServer(t)
	signup(t, s, "Ann", "ann@x.com", "p1")

	w := doJSON(s, http.MethodGet, "/patient/by-email/ann@x.com", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Ann", body["name"])
	assert.NotContains(t, body, "passwd")

	w = doJSON(s, http.MethodGet, "/patient/by-email/nobody@x.com", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Patient not found", decodeBody(t, w)["message"])
}

func TestCreateBid(t *testing.T) {
	s := newTestServer(t)
	body := signup(t, s, "Ann", "ann@x.com", "p1")
	patientID := uint(body["patient"].(map[string]any)["id"].(float64))
	hospitalID := createHospital(t, s, "General")

	w := createBid(t, s, patientID, hospitalID)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	bid := decodeBody(t, w)
	assert.Equal(t, models.BidStatusPending, bid["status"])
	assert.NotZero(t, bid["id"])

	// Dangling references are rejected.
	w = createBid(t, s, 999, hospitalID)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	w = createBid(t, s, patientID, 999)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Missing required field.
	w = doJSON(s, http.MethodPost, "/patient/create-bid", gin.H{"patient_id": patientID})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListBids(t *testing.T) {
	s := newTestServer(t)
	body := signup(t, s, "Ann", "ann@x.com", "p1")
	patientID := uint(body["patient"].(map[string]any)["id"].(float64))
	hospitalID := createHospital(t, s, "General")

	for i := 0; i < 3; i++ {
		w := createBid(t, s, patientID, hospitalID)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(s, http.MethodGet, "/bids/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var bids []models.Bid
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bids))
	require.Len(t, bids, 3)
	assert.Greater(t, bids[0].ID, bids[1].ID)
	assert.Greater(t, bids[1].ID, bids[2].ID)

	w = doJSON(s, http.MethodGet, "/bids/by-email/ann@x.com", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bids))
	assert.Len(t, bids, 3)

	// Unknown email is an empty list, not an error.
	w = doJSON(s, http.MethodGet, "/bids/by-email/nobody@x.com", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestBidDecisions(t *testing.T) {
	s := newTestServer(t)
	body := signup(t, s, "Ann", "ann@x.com", "p1")
	patientID := uint(body["patient"].(map[string]any)["id"].(float64))
	hospitalID := createHospital(t, s, "General")

	w := createBid(t, s, patientID, hospitalID)
	require.Equal(t, http.StatusCreated, w.Code)
	bidID := uint(decodeBody(t, w)["id"].(float64))

	w = doJSON(s, http.MethodPatch, fmt.Sprintf("/bids/%d/approve", bidID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.BidStatusApproved, decodeBody(t, w)["status"])

	// Decided bids may not transition again.
	w = doJSON(s, http.MethodPatch, fmt.Sprintf("/bids/%d/approve", bidID), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	w = doJSON(s, http.MethodPatch, fmt.Sprintf("/bids/%d/reject", bidID), nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(s, http.MethodPatch, "/bids/999/approve", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(s, http.MethodPatch, "/bids/999/reject", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(s, http.MethodPatch, "/bids/abc/approve", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRejectBid(t *testing.T) {
	s := newTestServer(t)
	body := signup(t, s, "Ann", "ann@x.com", "p1")
	patientID := uint(body["patient"].(map[string]any)["id"].(float64))
	hospitalID := createHospital(t, s, "General")

	w := createBid(t, s, patientID, hospitalID)
	require.Equal(t, http.StatusCreated, w.Code)
	bidID := uint(decodeBody(t, w)["id"].(float64))

	w = doJSON(s, http.MethodPatch, fmt.Sprintf("/bids/%d/reject", bidID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.BidStatusRejected, decodeBody(t, w)["status"])
}

func TestHospitals(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(s, http.MethodPost, "/hospitals/", gin.H{
		"name": "General", "address": "1 Main St", "quote": "cardiac package",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	hospital := decodeBody(t, w)
	assert.Equal(t, "General", hospital["name"])
	assert.Equal(t, "1 Main St", hospital["address"])
	id := uint(hospital["id"].(float64))

	w = doJSON(s, http.MethodGet, "/hospitals/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var hospitals []models.Hospital
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &hospitals))
	assert.Len(t, hospitals, 1)

	w = doJSON(s, http.MethodGet, fmt.Sprintf("/hospitals/%d", id), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(s, http.MethodGet, "/hospitals/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Hospital not found", decodeBody(t, w)["message"])

	// Name is required.
	w = doJSON(s, http.MethodPost, "/hospitals/", gin.H{"address": "1 Main St"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSuperadminLogin(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(s, http.MethodPost, "/superadmin/login", gin.H{
		"email": "admin@medbid.io", "passwd": "topsecret",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Superadmin authenticated", body["message"])
	assert.Equal(t, "superadmin", body["role"])

	w = doJSON(s, http.MethodPost, "/superadmin/login", gin.H{
		"email": "admin@medbid.io", "passwd": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid superadmin credentials", decodeBody(t, w)["message"])

	w = doJSON(s, http.MethodPost, "/superadmin/login", gin.H{
		"email": "other@medbid.io", "passwd": "topsecret",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
