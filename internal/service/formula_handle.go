package service

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ssineriz/molparse/formula"
)

func (s *service) handleAddFormula(w http.ResponseWriter, r *http.Request) {
	if t := r.Header.Get("Content-Type"); t != "application/json" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	userId, err := s.authorize(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	_formula := struct {
		Value string `json:"formula"`
	}{}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&_formula); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rpn, err := formula.ToRPN(_formula.Value)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	postfix := rpn.String()
	hash := getHash(postfix)

	if id, err := checkFormulaExists(s.db, hash, userId); err == nil {
		w.Write([]byte(strconv.FormatInt(id, 10)))
		return
	}

	id, err := storeFormulaState(s.db, in_progress, nil, userId, _formula.Value, postfix, hash)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := s.formulaQueue.Enqueue(pendingFormula{formula: _formula.Value, hash: hash}); err != nil {
		s.failFormula(hash, err.Error())
	}
	w.Write([]byte(strconv.FormatInt(id, 10)))
}

func (s *service) handleGetResult(w http.ResponseWriter, r *http.Request) {
	if _, err := s.authorize(r); err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}
	strId := r.URL.Query().Get("id")
	id, err := strconv.Atoi(strId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	st, err := getFormulaState(s.db, id)
	if err != nil {
		http.Error(w, fmt.Sprintf("no formula with id %d", id), http.StatusBadRequest)
		return
	}
	data, err := json.Marshal(st)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Write(data)
}

// handleGetComposition evaluates a formula in-request, without persisting
// anything.
func (s *service) handleGetComposition(w http.ResponseWriter, r *http.Request) {
	if _, err := s.authorize(r); err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}
	val, err := formula.Evaluate(r.URL.Query().Get("formula"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	data, err := json.Marshal(val)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Write(data)
}

// resolveFormulas drains the pending queue and evaluates each formula,
// recording the composition or the failure on its row.
func (s *service) resolveFormulas() {
	for {
		pf := s.formulaQueue.DequeueWait()
		go func(pf pendingFormula) {
			val, err := formula.Evaluate(pf.formula)
			if err != nil {
				s.failFormula(pf.hash, err.Error())
				return
			}
			data, err := json.Marshal(val)
			if err != nil {
				s.failFormula(pf.hash, err.Error())
				return
			}
			updateFormulaState(s.db, ok, string(data), pf.hash)
		}(pf)
	}
}

// failFormula marks the row failed, storing the message as a JSON string
// so get_result always returns well formed JSON in the result field.
func (s *service) failFormula(hash formulaHash, msg string) {
	data, _ := json.Marshal(msg)
	updateFormulaState(s.db, has_error, string(data), hash)
}
