package service

import (
	"crypto/sha1"
	"database/sql"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/ssineriz/molparse/internal/datastructs"
)

// service persists submitted formulas and resolves their molecular
// composition in the background.
type service struct {
	router *mux.Router
	db     *sql.DB

	formulaQueue *datastructs.Queue[pendingFormula]
}

// pendingFormula is one queued evaluation job.
type pendingFormula struct {
	formula string
	hash    formulaHash
}

func newService(db *sql.DB) *service {
	s := &service{
		db:           db,
		formulaQueue: datastructs.NewQueue[pendingFormula](64),
	}

	go s.resolveFormulas()

	r := mux.NewRouter()
	// user handle
	r.HandleFunc("/register", s.handleRegister).Methods("POST")
	r.HandleFunc("/login", s.handleLogin).Methods("POST")
	// formula handle
	r.HandleFunc("/add_formula", s.handleAddFormula).Methods("POST")
	r.HandleFunc("/get_result", s.handleGetResult).Methods("GET")
	r.HandleFunc("/get_composition", s.handleGetComposition).Methods("GET")

	s.router = r

	return s
}

func (s *service) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func GetServer(addr string, port int, db *sql.DB) *http.Server {
	var _addr string
	if strings.Contains(addr, "localhost") || strings.Contains(addr, "127.0.0.1") {
		_addr = fmt.Sprintf(":%d", port)
	} else {
		_addr = fmt.Sprintf("%s:%d", addr, port)
	}
	return &http.Server{
		Addr:    _addr,
		Handler: newService(db),
	}
}

type state string
type formulaHash int

func getHash(line string) formulaHash {
	h := sha1.New()
	h.Write([]byte(line))
	return formulaHash(binary.BigEndian.Uint32(h.Sum(nil)))
}

const (
	has_error   state = "error"
	in_progress state = "in progress"
	ok          state = "ok"
)

type formulaState struct {
	State  state           `json:"state"`
	Result json.RawMessage `json:"result"`
}
