// Package fakeapi поднимает in-memory REST API сервиса бронирования для тестов
package fakeapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-BeautyBooking/internal/integrations/bookingapi"
)

// Названия маршрутов (используются для подсчета вызовов и инъекции ошибок)
const (
	RouteShops          = "shops"
	RouteShop           = "shop"
	RouteShopServices   = "shop_services"
	RouteStylists       = "stylists"
	RouteStylist        = "stylist"
	RouteAvailableTimes = "available_times"
	RouteListBookings   = "list_bookings"
	RouteGetBooking     = "get_booking"
	RouteCreateBooking  = "create_booking"
	RouteUpdateBooking  = "update_booking"
	RouteLogin          = "login"
	RouteRegister       = "register"
	RouteSocialLogin    = "social_login"
)

// PathPrefix префикс API, как у настоящего сервера
const PathPrefix = "/api/v1"

type credentials struct {
	passwordHash []byte
	user         bookingapi.User
}

// Server фейковый сервер
type Server struct {
	srv *httptest.Server

	mu             sync.Mutex
	shops          map[int64]bookingapi.Shop
	stylists       map[int64][]bookingapi.Stylist
	availableTimes map[string][]bookingapi.AvailableTime
	bookings       []bookingapi.Booking
	users          map[string]credentials
	failures       map[string]int
	calls          map[string]int
	queries        map[string][]string
	created        []bookingapi.CreateBookingRequest
	updates        map[int64]bookingapi.UpdateBookingRequest
	lastAuth       string
	lastRequestID  string
	nextBookingID  int64
	nextUserID     int64
}

// New создает и запускает фейковый сервер
func New() *Server {
	s := &Server{
		shops:          make(map[int64]bookingapi.Shop),
		stylists:       make(map[int64][]bookingapi.Stylist),
		availableTimes: make(map[string][]bookingapi.AvailableTime),
		users:          make(map[string]credentials),
		failures:       make(map[string]int),
		calls:          make(map[string]int),
		queries:        make(map[string][]string),
		updates:        make(map[int64]bookingapi.UpdateBookingRequest),
		nextBookingID:  1000,
		nextUserID:     1,
	}
	s.srv = httptest.NewServer(s.router())
	return s
}

// URL возвращает базовый адрес API (с префиксом /api/v1)
func (s *Server) URL() string {
	return s.srv.URL + PathPrefix
}

// Close останавливает сервер
func (s *Server) Close() {
	s.srv.Close()
}

func (s *Server) router() http.Handler {
	r := mux.NewRouter()
	api := r.PathPrefix(PathPrefix).Subrouter()
	api.Use(s.track)

	api.HandleFunc("/shops", s.listShops).Methods(http.MethodGet).Name(RouteShops)
	api.HandleFunc("/shops/{id:[0-9]+}", s.getShop).Methods(http.MethodGet).Name(RouteShop)
	api.HandleFunc("/shops/{id:[0-9]+}/services", s.getShopServices).Methods(http.MethodGet).Name(RouteShopServices)
	api.HandleFunc("/shops/{id:[0-9]+}/stylists", s.getStylists).Methods(http.MethodGet).Name(RouteStylists)
	api.HandleFunc("/shops/{id:[0-9]+}/stylists/{stylist_id:[0-9]+}", s.getStylist).Methods(http.MethodGet).Name(RouteStylist)
	api.HandleFunc("/shops/{id:[0-9]+}/stylists/{stylist_id:[0-9]+}/available_times", s.getAvailableTimes).
		Methods(http.MethodGet).Name(RouteAvailableTimes)

	api.HandleFunc("/bookings", s.requireToken(s.listBookings)).Methods(http.MethodGet).Name(RouteListBookings)
	api.HandleFunc("/bookings", s.requireToken(s.createBooking)).Methods(http.MethodPost).Name(RouteCreateBooking)
	api.HandleFunc("/bookings/{id:[0-9]+}", s.requireToken(s.getBooking)).Methods(http.MethodGet).Name(RouteGetBooking)
	api.HandleFunc("/bookings/{id:[0-9]+}", s.requireToken(s.updateBooking)).Methods(http.MethodPut).Name(RouteUpdateBooking)

	api.HandleFunc("/login", s.login).Methods(http.MethodPost).Name(RouteLogin)
	api.HandleFunc("/register", s.register).Methods(http.MethodPost).Name(RouteRegister)
	api.HandleFunc("/social_login", s.socialLogin).Methods(http.MethodPost).Name(RouteSocialLogin)

	return r
}

// track считает вызовы маршрутов и отдает заранее настроенные ошибки
func (s *Server) track(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := ""
		if route := mux.CurrentRoute(r); route != nil {
			name = route.GetName()
		}

		s.mu.Lock()
		s.calls[name]++
		s.queries[name] = append(s.queries[name], r.URL.RawQuery)
		s.lastAuth = r.Header.Get("Authorization")
		s.lastRequestID = r.Header.Get("X-Request-ID")
		status, fail := s.failures[name]
		s.mu.Unlock()

		if fail {
			writeJSON(w, status, bookingapi.ErrorResponse{Error: fmt.Sprintf("injected failure for %s", name)})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requireToken(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
			writeJSON(w, http.StatusUnauthorized, bookingapi.ErrorResponse{Error: "로그인이 필요합니다"})
			return
		}
		next(w, r)
	}
}

// --- настройка данных ---

// AddShop добавляет заведение
func (s *Server) AddShop(shop bookingapi.Shop) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shops[shop.ID] = shop
}

// AddStylist добавляет специалиста в заведение
func (s *Server) AddStylist(shopID int64, stylist bookingapi.Stylist) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stylists[shopID] = append(s.stylists[shopID], stylist)
}

// SetAvailableTimes задает ответ available_times для специалиста и даты (YYYY-MM-DD)
func (s *Server) SetAvailableTimes(stylistID int64, date string, times []bookingapi.AvailableTime) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.availableTimes[availabilityKey(stylistID, date)] = times
}

// AddBooking добавляет существующее бронирование
func (s *Server) AddBooking(booking bookingapi.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = append(s.bookings, booking)
}

// AddUser регистрирует пользователя для входа по паролю
func (s *Server) AddUser(user bookingapi.User, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.Email] = credentials{passwordHash: hashPassword(password), user: user}
}

// FailRoute заставляет маршрут отвечать указанным статусом
func (s *Server) FailRoute(route string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[route] = status
}

// RestoreRoute снимает инъекцию ошибки
func (s *Server) RestoreRoute(route string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.failures, route)
}

// --- инспекция ---

// Calls возвращает количество вызовов маршрута
func (s *Server) Calls(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[route]
}

// TotalCalls возвращает количество всех вызовов API
func (s *Server) TotalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.calls {
		total += n
	}
	return total
}

// LastQuery возвращает строку запроса последнего вызова маршрута
func (s *Server) LastQuery(route string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := s.queries[route]
	if len(q) == 0 {
		return ""
	}
	return q[len(q)-1]
}

// Created возвращает тела всех запросов на создание бронирования
func (s *Server) Created() []bookingapi.CreateBookingRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]bookingapi.CreateBookingRequest(nil), s.created...)
}

// Update возвращает последнее обновление бронирования
func (s *Server) Update(bookingID int64) (bookingapi.UpdateBookingRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	req, ok := s.updates[bookingID]
	return req, ok
}

// LastAuthorization возвращает заголовок Authorization последнего запроса
func (s *Server) LastAuthorization() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAuth
}

// LastRequestID возвращает заголовок X-Request-ID последнего запроса
func (s *Server) LastRequestID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRequestID
}

// --- обработчики ---

func (s *Server) listShops(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	search := r.URL.Query().Get("search")

	s.mu.Lock()
	result := make([]bookingapi.Shop, 0, len(s.shops))
	for _, shop := range s.shops {
		if category != "" && shop.Category != category {
			continue
		}
		if search != "" && !strings.Contains(shop.Name, search) {
			continue
		}
		result = append(result, shop)
	}
	s.mu.Unlock()

	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) getShop(w http.ResponseWriter, r *http.Request) {
	shop, ok := s.findShop(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, bookingapi.ErrorResponse{Error: "Shop not found"})
		return
	}
	writeJSON(w, http.StatusOK, shop)
}

func (s *Server) getShopServices(w http.ResponseWriter, r *http.Request) {
	shop, ok := s.findShop(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, bookingapi.ErrorResponse{Error: "Shop not found"})
		return
	}
	services := shop.Services
	if services == nil {
		services = []bookingapi.Service{}
	}
	writeJSON(w, http.StatusOK, services)
}

func (s *Server) getStylists(w http.ResponseWriter, r *http.Request) {
	shopID := pathID(r, "id")

	s.mu.Lock()
	stylists := append([]bookingapi.Stylist{}, s.stylists[shopID]...)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, stylists)
}

func (s *Server) getStylist(w http.ResponseWriter, r *http.Request) {
	stylist, ok := s.findStylist(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, bookingapi.ErrorResponse{Error: "Stylist not found"})
		return
	}
	writeJSON(w, http.StatusOK, stylist)
}

func (s *Server) getAvailableTimes(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.findStylist(r); !ok {
		writeJSON(w, http.StatusNotFound, bookingapi.ErrorResponse{Error: "Stylist not found"})
		return
	}
	date := r.URL.Query().Get("date")
	if date == "" {
		writeJSON(w, http.StatusBadRequest, bookingapi.ErrorResponse{Error: "date is required"})
		return
	}

	s.mu.Lock()
	times := append([]bookingapi.AvailableTime{}, s.availableTimes[availabilityKey(pathID(r, "stylist_id"), date)]...)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, times)
}

func (s *Server) listBookings(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	bookings := append([]bookingapi.Booking{}, s.bookings...)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, bookings)
}

func (s *Server) getBooking(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, booking := range s.bookings {
		if booking.ID == id {
			writeJSON(w, http.StatusOK, booking)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, bookingapi.ErrorResponse{Error: "Booking not found"})
}

func (s *Server) createBooking(w http.ResponseWriter, r *http.Request) {
	var req bookingapi.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, bookingapi.ErrorResponse{Error: "invalid body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.created = append(s.created, req)

	shop, ok := s.shops[req.ShopID]
	if !ok {
		writeJSON(w, http.StatusUnprocessableEntity, bookingapi.ErrorResponse{Errors: []string{"Shop must exist"}})
		return
	}
	var service *bookingapi.Service
	for i := range shop.Services {
		if shop.Services[i].ID == req.ServiceID {
			service = &shop.Services[i]
			break
		}
	}
	if service == nil {
		writeJSON(w, http.StatusUnprocessableEntity, bookingapi.ErrorResponse{Errors: []string{"Service must exist"}})
		return
	}
	var stylist *bookingapi.Stylist
	for i, st := range s.stylists[req.ShopID] {
		if st.ID == req.StylistID {
			stylist = &s.stylists[req.ShopID][i]
			break
		}
	}
	if stylist == nil {
		writeJSON(w, http.StatusUnprocessableEntity, bookingapi.ErrorResponse{Errors: []string{"Stylist must exist"}})
		return
	}

	for _, existing := range s.bookings {
		if existing.Status == "cancelled" || existing.Stylist == nil {
			continue
		}
		if existing.Stylist.ID == req.StylistID && existing.BookingDate == req.BookingDate && existing.BookingTime == req.BookingTime {
			writeJSON(w, http.StatusConflict, bookingapi.ErrorResponse{Error: "이미 예약된 시간입니다"})
			return
		}
	}

	s.nextBookingID++
	booking := bookingapi.Booking{
		ID:          s.nextBookingID,
		Shop:        shop,
		Service:     *service,
		Stylist:     stylist,
		BookingDate: req.BookingDate,
		BookingTime: req.BookingTime,
		TotalPrice:  service.Price,
		Status:      "pending",
	}
	s.bookings = append(s.bookings, booking)

	writeJSON(w, http.StatusCreated, booking)
}

func (s *Server) updateBooking(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")

	var req bookingapi.UpdateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, bookingapi.ErrorResponse{Error: "invalid body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID != id {
			continue
		}
		s.updates[id] = req
		if req.Status != "" {
			s.bookings[i].Status = req.Status
		}
		if req.BookingDate != "" {
			s.bookings[i].BookingDate = req.BookingDate
		}
		if req.BookingTime != "" {
			s.bookings[i].BookingTime = req.BookingTime
		}
		writeJSON(w, http.StatusOK, s.bookings[i])
		return
	}
	writeJSON(w, http.StatusNotFound, bookingapi.ErrorResponse{Error: "Booking not found"})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req bookingapi.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, bookingapi.ErrorResponse{Error: "invalid body"})
		return
	}

	s.mu.Lock()
	cred, ok := s.users[req.Email]
	s.mu.Unlock()

	if !ok || bcrypt.CompareHashAndPassword(cred.passwordHash, []byte(req.Password)) != nil {
		writeJSON(w, http.StatusUnauthorized, bookingapi.ErrorResponse{Error: "이메일 또는 비밀번호가 올바르지 않습니다"})
		return
	}
	writeJSON(w, http.StatusOK, bookingapi.AuthResponse{Token: tokenFor(cred.user.ID), User: cred.user})
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req bookingapi.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, bookingapi.ErrorResponse{Error: "invalid body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[req.Email]; exists {
		writeJSON(w, http.StatusUnprocessableEntity, bookingapi.ErrorResponse{Errors: []string{"Email has already been taken"}})
		return
	}

	user := bookingapi.User{ID: s.nextUserID, Email: req.Email, Name: req.Name, Phone: req.Phone, Role: req.Role}
	s.nextUserID++
	s.users[req.Email] = credentials{passwordHash: hashPassword(req.Password), user: user}

	writeJSON(w, http.StatusCreated, bookingapi.AuthResponse{Token: tokenFor(user.ID), User: user})
}

func (s *Server) socialLogin(w http.ResponseWriter, r *http.Request) {
	var req bookingapi.SocialLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Provider == "" || req.UID == "" {
		writeJSON(w, http.StatusBadRequest, bookingapi.ErrorResponse{Error: "provider and uid are required"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cred, ok := s.users[req.Email]
	if !ok {
		user := bookingapi.User{ID: s.nextUserID, Email: req.Email, Name: req.Name, Phone: req.Phone, Role: "customer"}
		s.nextUserID++
		cred = credentials{user: user}
		s.users[req.Email] = cred
	}
	writeJSON(w, http.StatusOK, bookingapi.AuthResponse{Token: tokenFor(cred.user.ID), User: cred.user})
}

// --- вспомогательные функции ---

func (s *Server) findShop(r *http.Request) (bookingapi.Shop, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	shop, ok := s.shops[pathID(r, "id")]
	return shop, ok
}

func (s *Server) findStylist(r *http.Request) (bookingapi.Stylist, bool) {
	shopID := pathID(r, "id")
	stylistID := pathID(r, "stylist_id")

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, stylist := range s.stylists[shopID] {
		if stylist.ID == stylistID {
			return stylist, true
		}
	}
	return bookingapi.Stylist{}, false
}

func pathID(r *http.Request, name string) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	return id
}

func availabilityKey(stylistID int64, date string) string {
	return fmt.Sprintf("%d/%s", stylistID, date)
}

// hashPassword хеширует пароль bcrypt с минимальной стоимостью
// Для пароля длиннее 72 байт возвращает nil, вход с таким паролем невозможен
func hashPassword(password string) []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return nil
	}
	return hash
}

func tokenFor(userID int64) string {
	return fmt.Sprintf("token-%d", userID)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
