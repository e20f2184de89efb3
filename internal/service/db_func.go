package service

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dgrijalva/jwt-go"
)

var key = []byte("molparse signing key")

func validateToken(bearerToken string) (*jwt.Token, error) {
	token, err := jwt.Parse(bearerToken, func(t *jwt.Token) (interface{}, error) {
		return key, nil
	})
	return token, err
}

func getUserId(bearerToken string) (int, error) {
	token, err := validateToken(bearerToken)
	if err != nil {
		return 0, err
	}
	if !token.Valid {
		return 0, errors.New("invalid token")
	}

	user := token.Claims.(jwt.MapClaims)
	id, err := strconv.Atoi(user["id"].(string))
	if err != nil {
		return 0, err
	}
	return id, nil
}

// authorize resolves the user behind the request's Authorization header.
func (s *service) authorize(r *http.Request) (int, error) {
	bearerToken := r.Header.Get("Authorization")
	if bearerToken == "" {
		return 0, errors.New(`no header "Authorization"`)
	}
	return getUserId(bearerToken)
}

func storeFormulaState(db *sql.DB, status state, result interface{}, userId int, rawFormula, postfix string, hash formulaHash) (int64, error) {
	var q string = `
	INSERT INTO formulas (status, result, userId, hash, formula, postfixFormula) VALUES ($1, $2, $3, $4, $5, $6)
	`

	res, err := db.Exec(q, status, result, userId, hash, rawFormula, postfix)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func updateFormulaState(db *sql.DB, status state, result interface{}, hash formulaHash) error {
	var q string = `
	UPDATE formulas SET status = $1, result = $2 WHERE hash = $3
	`

	_, err := db.Exec(q, status, result, hash)
	return err
}

func checkFormulaExists(db *sql.DB, hash formulaHash, userId int) (int64, error) {
	var q string = `
	SELECT id FROM formulas WHERE hash = $1 AND userId = $2
	`

	var id int64
	err := db.QueryRow(q, hash, userId).Scan(&id)
	return id, err
}

func getFormulaState(db *sql.DB, id int) (formulaState, error) {
	var q string = `
	SELECT status, result FROM formulas WHERE id = $1`
	var (
		st     state
		result sql.NullString
	)
	if err := db.QueryRow(q, id).Scan(&st, &result); err != nil {
		return formulaState{}, err
	}
	fs := formulaState{State: st}
	if result.Valid && result.String != "" {
		fs.Result = json.RawMessage(result.String)
	}
	return fs, nil
}
