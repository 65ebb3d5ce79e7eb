package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/ULLASCHANDERR/v0-professional-email-composer/pkg/gemini"
	"github.com/ULLASCHANDERR/v0-professional-email-composer/pkg/kvstore"
)

// GeminiSettings holds the runtime-configurable credential and endpoint
// for the generative-language service.
type GeminiSettings struct {
	ApiKey string `json:"apiKey"`
	ApiURL string `json:"apiUrl"`
}

const geminiSettingsKey = "settings/gemini"

var (
	geminiSettings     GeminiSettings
	geminiSettingsLock sync.RWMutex
	settingsStore      kvstore.Store
)

// InitGeminiSettings loads persisted settings from store, falling back
// to the given defaults for anything not stored.
func InitGeminiSettings(store kvstore.Store, defaults GeminiSettings) {
	if defaults.ApiURL == "" {
		defaults.ApiURL = gemini.DefaultApiURL
	}

	settings := defaults
	raw, err := store.Get(geminiSettingsKey)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load gemini settings, using defaults")
	} else if len(raw) > 0 {
		var stored GeminiSettings
		if err := json.Unmarshal(raw, &stored); err != nil {
			log.Warn().Err(err).Msg("stored gemini settings unreadable, using defaults")
		} else {
			if stored.ApiKey != "" {
				settings.ApiKey = stored.ApiKey
			}
			if stored.ApiURL != "" {
				settings.ApiURL = stored.ApiURL
			}
		}
	}

	geminiSettingsLock.Lock()
	defer geminiSettingsLock.Unlock()
	geminiSettings = settings
	settingsStore = store
}

// GetGeminiApiKey returns the current API key.
func GetGeminiApiKey() string {
	geminiSettingsLock.RLock()
	defer geminiSettingsLock.RUnlock()
	return geminiSettings.ApiKey
}

// GetGeminiApiURL returns the current endpoint URL.
func GetGeminiApiURL() string {
	geminiSettingsLock.RLock()
	defer geminiSettingsLock.RUnlock()
	return geminiSettings.ApiURL
}

// persistGeminiSettings writes the current settings; callers hold the
// write lock.
func persistGeminiSettings() error {
	raw, err := json.Marshal(geminiSettings)
	if err != nil {
		return err
	}
	return settingsStore.Put(geminiSettingsKey, raw)
}

// UpdateGeminiSettingsRequest represents the request body for updating
// the Gemini settings
type UpdateGeminiSettingsRequest struct {
	ApiKey string `json:"apiKey" binding:"required"`
	ApiURL string `json:"apiUrl"`
}

// GetGeminiSettings returns current Gemini configuration
// GET /api/settings/gemini
func GetGeminiSettings(c *gin.Context) {
	geminiSettingsLock.RLock()
	defer geminiSettingsLock.RUnlock()

	c.JSON(http.StatusOK, gin.H{
		"apiKey": geminiSettings.ApiKey,
		"apiUrl": geminiSettings.ApiURL,
		"hasKey": geminiSettings.ApiKey != "",
	})
}

// UpdateGeminiSettings updates the credential and endpoint at runtime
// PUT /api/settings/gemini
func UpdateGeminiSettings(c *gin.Context) {
	var req UpdateGeminiSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	geminiSettingsLock.Lock()
	geminiSettings.ApiKey = req.ApiKey
	if req.ApiURL != "" {
		geminiSettings.ApiURL = req.ApiURL
	}
	err := persistGeminiSettings()
	geminiSettingsLock.Unlock()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Gemini settings updated successfully",
		"apiUrl":  GetGeminiApiURL(),
	})
}

// ClearGeminiSettings removes the credential and resets the endpoint
// DELETE /api/settings/gemini
func ClearGeminiSettings(c *gin.Context) {
	geminiSettingsLock.Lock()
	geminiSettings = GeminiSettings{ApiURL: gemini.DefaultApiURL}
	err := persistGeminiSettings()
	geminiSettingsLock.Unlock()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Gemini settings cleared"})
}

// TestGeminiConnection checks whether the configured endpoint host is
// reachable
// POST /api/settings/gemini/test
func TestGeminiConnection(c *gin.Context) {
	var req struct {
		ApiURL string `json:"apiUrl"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		// If no body provided, use current config
		req.ApiURL = GetGeminiApiURL()
	}
	if req.ApiURL == "" {
		req.ApiURL = GetGeminiApiURL()
	}

	parsed, err := url.Parse(req.ApiURL)
	if err != nil || parsed.Host == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"connected": false,
			"error":     "invalid API URL",
		})
		return
	}

	resp, err := http.Get(parsed.Scheme + "://" + parsed.Host)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"connected": false,
			"error":     err.Error(),
		})
		return
	}
	defer resp.Body.Close()

	c.JSON(http.StatusOK, gin.H{
		"connected":   true,
		"apiUrl":      req.ApiURL,
		"status_code": resp.StatusCode,
	})
}
