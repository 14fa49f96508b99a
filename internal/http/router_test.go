package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	intconfig "javaterra/internal/config"
	"javaterra/internal/domain/models"
	"javaterra/internal/services"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

var bookingCols = []string{
	"id", "booking_id", "departure", "destination", "date", "time", "bus_type", "quantity", "total_price",
	"username", "birth_date", "email", "address", "phone", "payment_status", "booking_status", "created_at",
}

func setup(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	prev := intconfig.DB
	intconfig.DB = db
	t.Cleanup(func() {
		intconfig.DB = prev
		db.Close()
	})

	auth, err := services.NewAuthService("alip", "alip25", "test-secret", time.Hour, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}
	env := intconfig.Env{CORSAllowedOrigins: []string{"http://localhost:5173"}}
	return NewRouter(env, auth), mock
}

func do(r http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return out
}

func addBooking(rows *sqlmock.Rows, id int64, bookingID, name string) *sqlmock.Rows {
	return rows.AddRow(id, bookingID, "Jakarta", "Yogyakarta", "2026-10-15", "08:00", "Bisnis", 2, "Rp260.000",
		name, "1990-05-17", "budi@gmail.com", "Jl. Merdeka 1", "081234567890", "not_paid", "pending",
		time.Date(2026, 10, 14, 9, 0, 0, 0, time.Local))
}

func TestCreateBooking(t *testing.T) {
	r, mock := setup(t)
	mock.ExpectExec("INSERT INTO bookings").WillReturnResult(sqlmock.NewResult(1, 1))

	body := `{"departure":"Jakarta","destination":"Yogyakarta","date":"2026-10-15","time":"08:00","busType":"Bisnis",` +
		`"quantity":"2","totalPrice":"Rp260.000","username":"Budi","birth":"1990-05-17","email":"budi@gmail.com",` +
		`"address":"Jl. Merdeka 1","phone":"081234567890"}`
	w := do(r, http.MethodPost, "/api/create-booking", body, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	var resp models.CreateBookingResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || !strings.HasPrefix(resp.BookingID, "JVT") || len(resp.BookingID) != 11 {
		t.Fatalf("response = %+v", resp)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBookingBadBody(t *testing.T) {
	r, _ := setup(t)
	w := do(r, http.MethodPost, "/api/create-booking", `{"quantity":"dua"}`, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if out := decode(t, w); out["success"] != false || out["error"] != "Invalid request body" {
		t.Fatalf("body = %v", out)
	}
}

func TestSearchBookings(t *testing.T) {
	r, mock := setup(t)

	w := do(r, http.MethodPost, "/api/search-bookings", `{"name":"  "}`, nil)
	if w.Code != http.StatusBadRequest || decode(t, w)["error"] != "Name is required" {
		t.Fatalf("empty name = %d %s", w.Code, w.Body.String())
	}

	rows := sqlmock.NewRows(bookingCols)
	addBooking(rows, 2, "JVT2", "Budi Santoso")
	mock.ExpectQuery("LIKE").WithArgs("%budi%").WillReturnRows(rows)

	w = do(r, http.MethodPost, "/api/search-bookings", `{"name":"Budi"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	var resp models.SearchBookingsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.Count != 1 || resp.Bookings[0].BookingID != "JVT2" {
		t.Fatalf("response = %+v", resp)
	}

	mock.ExpectQuery("LIKE").WillReturnRows(sqlmock.NewRows(bookingCols))
	w = do(r, http.MethodPost, "/api/search-bookings", `{"name":"nobody"}`, nil)
	if !strings.Contains(w.Body.String(), `"bookings":[]`) {
		t.Fatalf("empty result should carry an empty list: %s", w.Body.String())
	}
}

func TestGetBookingAndETicket(t *testing.T) {
	r, mock := setup(t)

	mock.ExpectQuery("WHERE booking_id = \\?").WithArgs("JVT404").WillReturnRows(sqlmock.NewRows(bookingCols))
	w := do(r, http.MethodGet, "/api/booking/JVT404", "", nil)
	if w.Code != http.StatusNotFound || decode(t, w)["error"] != "Booking not found" {
		t.Fatalf("missing = %d %s", w.Code, w.Body.String())
	}

	mock.ExpectQuery("WHERE booking_id = \\?").WithArgs("JVT1").
		WillReturnRows(addBooking(sqlmock.NewRows(bookingCols), 1, "JVT1", "Budi"))
	w = do(r, http.MethodGet, "/api/booking/JVT1", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get = %d %s", w.Code, w.Body.String())
	}
	booking, _ := decode(t, w)["booking"].(map[string]any)
	if booking["booking_id"] != "JVT1" || booking["created_at"] != "2026-10-14 09:00:00" {
		t.Fatalf("booking = %v", booking)
	}

	mock.ExpectQuery("WHERE booking_id = \\?").WithArgs("JVT1").
		WillReturnRows(addBooking(sqlmock.NewRows(bookingCols), 1, "JVT1", "Budi"))
	w = do(r, http.MethodGet, "/api/booking/JVT1/e-ticket", "", nil)
	if w.Code != http.StatusOK || w.Header().Get("Content-Type") != "application/pdf" {
		t.Fatalf("e-ticket = %d %q", w.Code, w.Header().Get("Content-Type"))
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Fatalf("e-ticket body is not a PDF")
	}
}

func login(t *testing.T, r http.Handler) string {
	t.Helper()
	w := do(r, http.MethodPost, "/admin/login", `{"username":"alip","password":"alip25"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("login = %d %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Header().Get("Set-Cookie"), "admin_token=") {
		t.Fatalf("login should set the session cookie")
	}
	token, _ := decode(t, w)["token"].(string)
	if token == "" {
		t.Fatalf("no token in login response")
	}
	return token
}

func TestAdminRequiresLogin(t *testing.T) {
	r, _ := setup(t)

	w := do(r, http.MethodGet, "/admin/api/bookings", "", nil)
	if w.Code != http.StatusUnauthorized || decode(t, w)["error"] != "Unauthorized" {
		t.Fatalf("unauthenticated = %d %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodPost, "/admin/login", `{"username":"alip","password":"nope"}`, nil)
	if w.Code != http.StatusUnauthorized || decode(t, w)["error"] != "Invalid credentials" {
		t.Fatalf("bad login = %d %s", w.Code, w.Body.String())
	}
}

func TestAdminBookingLifecycle(t *testing.T) {
	r, mock := setup(t)
	auth := map[string]string{"Authorization": "Bearer " + login(t, r)}

	mock.ExpectQuery("WHERE booking_status = \\?").WithArgs("pending").
		WillReturnRows(addBooking(sqlmock.NewRows(bookingCols), 1, "JVT1", "Budi"))
	w := do(r, http.MethodGet, "/admin/api/bookings?status=pending", "", auth)
	if w.Code != http.StatusOK || decode(t, w)["count"] != float64(1) {
		t.Fatalf("list = %d %s", w.Code, w.Body.String())
	}

	mock.ExpectExec("UPDATE bookings SET booking_status = \\?, payment_status = \\? WHERE id = \\?").
		WithArgs("confirmed", "paid", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	w = do(r, http.MethodPut, "/admin/api/booking/1/status", `{"booking_status":"confirmed","payment_status":"paid"}`, auth)
	if w.Code != http.StatusOK {
		t.Fatalf("update = %d %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodPut, "/admin/api/booking/abc/status", `{"booking_status":"confirmed"}`, auth)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad id = %d", w.Code)
	}

	mock.ExpectExec("DELETE FROM bookings WHERE id = \\?").WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	w = do(r, http.MethodDelete, "/admin/api/booking/1", "", auth)
	if w.Code != http.StatusOK {
		t.Fatalf("delete = %d %s", w.Code, w.Body.String())
	}

	mock.ExpectExec("DELETE FROM bookings WHERE id = \\?").WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	w = do(r, http.MethodDelete, "/admin/api/booking/1", "", auth)
	if w.Code != http.StatusNotFound {
		t.Fatalf("delete again = %d", w.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAdminLogoutClearsCookie(t *testing.T) {
	r, _ := setup(t)
	w := do(r, http.MethodGet, "/admin/logout", "", nil)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/admin/login" {
		t.Fatalf("logout = %d %q", w.Code, w.Header().Get("Location"))
	}
	if !strings.Contains(w.Header().Get("Set-Cookie"), "Max-Age=0") {
		t.Fatalf("cookie not cleared: %q", w.Header().Get("Set-Cookie"))
	}
}

func TestHealthAndPreflight(t *testing.T) {
	r, _ := setup(t)
	if w := do(r, http.MethodGet, "/api/health", "", nil); w.Code != http.StatusOK {
		t.Fatalf("health = %d", w.Code)
	}

	w := do(r, http.MethodOptions, "/api/create-booking", "", map[string]string{
		"Origin":                        "http://localhost:5173",
		"Access-Control-Request-Method": "POST",
	})
	if w.Code != http.StatusNoContent || w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5173" {
		t.Fatalf("preflight = %d %q", w.Code, w.Header().Get("Access-Control-Allow-Origin"))
	}

	if w := do(r, http.MethodGet, "/nope", "", nil); w.Code != http.StatusNotFound {
		t.Fatalf("unknown route = %d", w.Code)
	}
}
