package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"courierbilling/auth"
	"courierbilling/config"
	"courierbilling/models"
	"courierbilling/repository"
)

type UserHandler struct {
	Repo repository.UserRepository
	Cfg  *config.Config
}

// Signup handler
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var user models.AppUser
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if user.Name == "" || user.Username == "" {
		writeError(w, http.StatusBadRequest, "Name and username are required")
		return
	}
	if user.Role != "" && user.Role != models.RoleAdmin && user.Role != models.RoleBillingOperator {
		writeError(w, http.StatusBadRequest, "Role must be admin or billing_operator")
		return
	}

	if err := h.Repo.CreateUser(&user); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create user: "+err.Error())
		return
	}

	user.Password = "" // hide password hash

	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "User signed up successfully",
		Data:    user,
	})
}

// Login handler
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	user, err := h.Repo.GetUserByUsername(creds.Username)
	if err != nil || user == nil {
		writeError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	lifespan := time.Duration(h.Cfg.TokenHourLifespan) * time.Hour
	token, err := auth.Generate(h.Cfg.JWTSecret, lifespan, user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	user.Password = "" // hide password hash

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Login successful",
		Data: map[string]interface{}{
			"token": token,
			"user":  user,
		},
	})
}
