package service

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

type registerUser struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func (s *service) handleRegister(w http.ResponseWriter, r *http.Request) {
	register := registerUser{}
	err := json.NewDecoder(r.Body).Decode(&register)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	q := `
	INSERT INTO users (login, hashedPassword) VALUES ($1, $2)
	`
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(register.Password), 14)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if _, err := s.db.Exec(q, register.Login, hashedPassword); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *service) handleLogin(w http.ResponseWriter, r *http.Request) {
	if t := r.Header.Get("Content-Type"); t != "application/json" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	register := registerUser{}
	err := json.NewDecoder(r.Body).Decode(&register)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	q := `
	SELECT hashedPassword, id FROM users WHERE login = $1
	`
	var (
		hashedPassword string
		id             int
	)
	if err := s.db.QueryRow(q, register.Login).Scan(&hashedPassword, &id); err != nil {
		http.Error(w, "unknown login", http.StatusBadRequest)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(register.Password)); err != nil {
		http.Error(w, "incorrect password", http.StatusBadRequest)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  strconv.Itoa(id),
		"nbf": time.Now().Unix(),
		"exp": time.Now().Add(30 * 24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	})
	tokenString, err := token.SignedString(key)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(tokenString)
}
