package auth

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/ketoo27/Evolution-project/database"
	"github.com/ketoo27/Evolution-project/middleware"
	"github.com/ketoo27/Evolution-project/models"
	"github.com/ketoo27/Evolution-project/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Username             string `json:"username" validate:"required,nameok"`
	Email                string `json:"email" validate:"required,emailok"`
	Password             string `json:"password" validate:"required,pwdmin"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
	Name                 string `json:"name" validate:"nameok"`
	Country              string `json:"country"`
	Bio                  string `json:"bio"`
}

func RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.Name = strings.TrimSpace(req.Name)

	db := database.DB

	// Uniqueness checks with field-level messages
	var existing models.User
	if err := db.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		utils.WriteJSON(w, http.StatusConflict, utils.APIResponse{Success: false, Message: "Username is already taken", Data: map[string]interface{}{"field": "username"}})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[register] DB error checking username: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}
	if err := db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		utils.WriteJSON(w, http.StatusConflict, utils.APIResponse{Success: false, Message: "Email address is already registered", Data: map[string]interface{}{"field": "email"}})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[register] DB error checking email: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	newUser := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
		Name:     req.Name,
		Country:  strings.TrimSpace(req.Country),
		Bio:      strings.TrimSpace(req.Bio),
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("[register] DB Create user error: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Registration failed, please try again"})
		return
	}

	accessToken, err := utils.GenerateAccessTokenWithExpiry(newUser.ID, accessTokenTTL)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to create token"})
		return
	}
	refreshToken, err := utils.GenerateRefreshToken(newUser.ID)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to store refresh token"})
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "User registered successfully!",
		Data: map[string]interface{}{
			"access_token":  accessToken,
			"access_expire": time.Now().Add(accessTokenTTL).UTC().Format(time.RFC3339),
			"refresh_token": refreshToken,
			"user": map[string]interface{}{
				"id":       newUser.ID,
				"username": newUser.Username,
				"email":    newUser.Email,
				"name":     newUser.Name,
			},
		},
	})
}
