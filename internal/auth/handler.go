package auth

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"gorm.io/gorm"

	"github.com/edulink/api-agency/internal/utils"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

// Login checks a credential and issues an access token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	var cred Credential
	if err := h.DB.Where("email = ?", req.Email).First(&cred).Error; err != nil {
		http.Error(w, "incorrect email or password", http.StatusUnauthorized)
		return
	}
	if !cred.IsActive {
		http.Error(w, "inactive user", http.StatusBadRequest)
		return
	}
	if !utils.CheckPassword(cred.Password, req.Password) {
		http.Error(w, "incorrect email or password", http.StatusUnauthorized)
		return
	}

	token, err := GenerateAccessToken(cred.ID, cred.IsAdmin)
	if err != nil {
		http.Error(w, "could not issue token", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// EnsureAdmin creates the bootstrap admin account from ADMIN_EMAIL /
// ADMIN_PASSWORD when no credential with that email exists yet.
func EnsureAdmin(db *gorm.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	var count int64
	if err := db.Model(&Credential{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	log.Printf("seeding admin credential %s", email)
	return db.Create(&Credential{Email: email, Password: hash, IsActive: true, IsAdmin: true}).Error
}
