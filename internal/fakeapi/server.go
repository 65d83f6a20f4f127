// Package fakeapi is an in-memory implementation of the REST API used by
// tests and by the dev-server command.
package fakeapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/fivetwenty-io/repuestos/pkg/repuestos"
	"github.com/gorilla/mux"
)

var (
	errUnknownResource = errors.New("unknown resource")
	errNotFound        = errors.New("record not found")
)

// KeyFields maps each resource to its primary-key field.
var KeyFields = map[string]string{
	repuestos.ResourceClientes:      "id_cliente",
	repuestos.ResourceEquivalencias: "id_equivalencia",
	repuestos.ResourceProveedores:   "id_proveedor",
	repuestos.ResourceRepuestos:     "id_repuesto",
	repuestos.ResourceVentas:        "id_registro_venta",
	repuestos.ResourceUsuarios:      "id_usuario",
}

type record map[string]interface{}

type collection struct {
	keyField string
	nextID   int
	order    []int
	records  map[int]record
}

func (c *collection) list() []record {
	items := make([]record, 0, len(c.order))
	for _, id := range c.order {
		items = append(items, copyRecord(c.records[id]))
	}

	return items
}

func (c *collection) insert(rec record) record {
	id := keyOf(rec, c.keyField)
	if id <= 0 {
		id = c.nextID
	}

	if id >= c.nextID {
		c.nextID = id + 1
	}

	rec[c.keyField] = id
	if _, exists := c.records[id]; !exists {
		c.order = append(c.order, id)
	}

	c.records[id] = rec

	return copyRecord(rec)
}

func (c *collection) remove(id int) bool {
	if _, ok := c.records[id]; !ok {
		return false
	}

	delete(c.records, id)

	for i, key := range c.order {
		if key == id {
			c.order = append(c.order[:i], c.order[i+1:]...)

			break
		}
	}

	return true
}

// Server serves the REST API from memory. It is safe for concurrent use.
type Server struct {
	*mux.Router

	mu          sync.Mutex
	collections map[string]*collection
	failures    []int
	requests    int
	logger      repuestos.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger logs every request.
func WithLogger(logger repuestos.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// New creates an empty server. Mount it under a prefix with http.StripPrefix
// when the API base URL has a path.
func New(opts ...Option) *Server {
	s := &Server{
		Router:      mux.NewRouter(),
		collections: make(map[string]*collection, len(KeyFields)),
	}

	for resource, keyField := range KeyFields {
		s.collections[resource] = &collection{
			keyField: keyField,
			nextID:   1,
			records:  make(map[int]record),
		}
	}

	for _, opt := range opts {
		opt(s)
	}

	s.Use(s.countRequests)

	if s.logger != nil {
		s.Use(s.logRequests)
	}

	s.Use(s.injectFailures)

	s.HandleFunc("/equivalencias/search", s.searchEquivalencias).Methods(http.MethodGet)
	s.HandleFunc("/repuestos/search", s.searchRepuestos).Methods(http.MethodGet)
	s.HandleFunc("/{resource}", s.list).Methods(http.MethodGet)
	s.HandleFunc("/{resource}", s.create).Methods(http.MethodPost)
	s.HandleFunc("/{resource}/{id:[0-9]+}", s.get).Methods(http.MethodGet)
	s.HandleFunc("/{resource}/{id:[0-9]+}", s.update).Methods(http.MethodPut)
	s.HandleFunc("/{resource}/{id:[0-9]+}", s.remove).Methods(http.MethodDelete)

	return s
}

// FailNext makes the next request fail with status. Calls queue up.
func (s *Server) FailNext(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failures = append(s.failures, status)
}

// Requests returns the number of requests received so far.
func (s *Server) Requests() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.requests
}

// Seed stores records as if they had been created. Records keep their key
// when one is set; otherwise the next key is assigned.
func (s *Server) Seed(resource string, records ...interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	coll, ok := s.collections[resource]
	if !ok {
		return fmt.Errorf("%w: %s", errUnknownResource, resource)
	}

	for _, value := range records {
		rec, err := toRecord(value)
		if err != nil {
			return err
		}

		coll.insert(rec)
	}

	return nil
}

func (s *Server) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests++
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.logger.Info("fake API request", map[string]interface{}{
			"method": r.Method,
			"path":   r.URL.Path,
			"query":  r.URL.RawQuery,
		})

		next.ServeHTTP(w, r)
	})
}

func (s *Server) injectFailures(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()

		status := 0
		if len(s.failures) > 0 {
			status = s.failures[0]
			s.failures = s.failures[1:]
		}

		s.mu.Unlock()

		if status != 0 {
			respondError(w, status, "injected failure")

			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) lookup(r *http.Request) (*collection, int, error) {
	vars := mux.Vars(r)

	coll, ok := s.collections[vars["resource"]]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %s", errUnknownResource, vars["resource"])
	}

	idValue, hasID := vars["id"]
	if !hasID {
		return coll, 0, nil
	}

	id, err := strconv.Atoi(idValue)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s", errNotFound, idValue)
	}

	return coll, id, nil
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	coll, _, err := s.lookup(r)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())

		return
	}

	items := coll.list()

	if mux.Vars(r)["resource"] == repuestos.ResourceVentas {
		s.expandVentas(items, r.URL.Query().Get("include"))
	}

	respondJSON(w, http.StatusOK, items)
}

// expandVentas populates the referenced customer and part of every sale.
func (s *Server) expandVentas(items []record, include string) {
	for _, relation := range strings.Split(include, ",") {
		var (
			related  *collection
			foreign  string
			property string
		)

		switch strings.TrimSpace(relation) {
		case "cliente":
			related, foreign, property = s.collections[repuestos.ResourceClientes], "id_cliente", "cliente"
		case "repuesto":
			related, foreign, property = s.collections[repuestos.ResourceRepuestos], "id_repuesto", "repuesto"
		default:
			continue
		}

		for _, item := range items {
			if rec, ok := related.records[keyOf(item, foreign)]; ok {
				item[property] = copyRecord(rec)
			}
		}
	}
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	coll, id, err := s.lookup(r)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())

		return
	}

	rec, ok := coll.records[id]
	if !ok {
		respondError(w, http.StatusNotFound, errNotFound.Error())

		return
	}

	respondJSON(w, http.StatusOK, rec)
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	rec, err := decodeRecord(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())

		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	coll, _, err := s.lookup(r)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())

		return
	}

	// Keys are always assigned by the server.
	delete(rec, coll.keyField)

	respondJSON(w, http.StatusCreated, coll.insert(rec))
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	changes, err := decodeRecord(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())

		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	coll, id, err := s.lookup(r)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())

		return
	}

	rec, ok := coll.records[id]
	if !ok {
		respondError(w, http.StatusNotFound, errNotFound.Error())

		return
	}

	delete(changes, coll.keyField)

	for field, value := range changes {
		rec[field] = value
	}

	respondJSON(w, http.StatusOK, rec)
}

func (s *Server) remove(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	coll, id, err := s.lookup(r)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())

		return
	}

	if !coll.remove(id) {
		respondError(w, http.StatusNotFound, errNotFound.Error())

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// searchEquivalencias returns every code paired with codigo, in either direction.
func (s *Server) searchEquivalencias(w http.ResponseWriter, r *http.Request) {
	codigo := strings.TrimSpace(r.URL.Query().Get("codigo"))

	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool)
	codes := []string{}

	for _, rec := range s.collections[repuestos.ResourceEquivalencias].list() {
		original, _ := rec["codigo_OEM_original"].(string)
		equivalente, _ := rec["codigo_OEM_equivalente"].(string)

		var match string

		switch {
		case strings.EqualFold(original, codigo):
			match = equivalente
		case strings.EqualFold(equivalente, codigo):
			match = original
		default:
			continue
		}

		if match != "" && !seen[match] {
			seen[match] = true
			codes = append(codes, match)
		}
	}

	respondJSON(w, http.StatusOK, codes)
}

var repuestoSearchFields = []string{"texto", "marca_auto", "modelo_auto", "codigo_OEM_original", "marca_OEM"}

func (s *Server) searchRepuestos(w http.ResponseWriter, r *http.Request) {
	query := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))

	s.mu.Lock()
	defer s.mu.Unlock()

	matches := []record{}

	for _, rec := range s.collections[repuestos.ResourceRepuestos].list() {
		for _, field := range repuestoSearchFields {
			value, _ := rec[field].(string)
			if strings.Contains(strings.ToLower(value), query) {
				matches = append(matches, rec)

				break
			}
		}
	}

	respondJSON(w, http.StatusOK, matches)
}

// Resources returns the served resource names, sorted.
func Resources() []string {
	names := make([]string, 0, len(KeyFields))
	for name := range KeyFields {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func decodeRecord(r *http.Request) (record, error) {
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()

	var rec record

	err := decoder.Decode(&rec)
	if err != nil {
		return nil, fmt.Errorf("invalid JSON body: %w", err)
	}

	if rec == nil {
		rec = record{}
	}

	return rec, nil
}

func toRecord(value interface{}) (record, error) {
	encoded, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encoding seed record: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(encoded))
	decoder.UseNumber()

	var rec record

	err = decoder.Decode(&rec)
	if err != nil {
		return nil, fmt.Errorf("decoding seed record: %w", err)
	}

	return rec, nil
}

func keyOf(rec record, field string) int {
	switch value := rec[field].(type) {
	case int:
		return value
	case float64:
		return int(value)
	case json.Number:
		id, err := value.Int64()
		if err != nil {
			return 0
		}

		return int(id)
	default:
		return 0
	}
}

func copyRecord(rec record) record {
	dup := make(record, len(rec))
	for key, value := range rec {
		dup[key] = value
	}

	return dup
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"message": message,
	})
}
