// Package registry announces this service's UI module to the external host
// platform. The announcement is one-shot and best-effort: the host deduplicates
// repeated announcements across restarts, and a failure never affects serving.
package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"orgbook.app/api-server/core/config"
)

const announceTimeout = 5 * time.Second

// Manifest describes the UI entry point the host registry exposes for this
// service: where the bundle lives and how it is presented in the host shell.
type Manifest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Scope       string `json:"scope"`
	EntryURL    string `json:"entry_url"`
	Icon        string `json:"icon"`
	Route       string `json:"route"`
}

// DefaultManifest returns the manifest for the organizations module.
func DefaultManifest(entryURL string) Manifest {
	return Manifest{
		Name:        "Organizations",
		Description: "Manage organization profiles",
		Scope:       "orgbook/organizations",
		EntryURL:    entryURL,
		Icon:        "building",
		Route:       "/organizations",
	}
}

type Announcer struct {
	cfg      config.RegistryConfig
	manifest Manifest
	client   *http.Client
}

func NewAnnouncer(cfg config.RegistryConfig, manifest Manifest) *Announcer {
	return &Announcer{
		cfg:      cfg,
		manifest: manifest,
		client:   &http.Client{Timeout: announceTimeout},
	}
}

// Announce posts the manifest to the host registry, authenticated with the
// shared admin secret header. Returns an error on any transport failure or
// non-2xx response; the caller only logs it.
func (a *Announcer) Announce(ctx context.Context) error {
	if !a.cfg.Enabled() {
		return fmt.Errorf("registry announcement disabled: missing registry URL or admin token")
	}

	body, err := json.Marshal(a.manifest)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, announceTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.cfg.BaseURL+"/api/modules", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building announce request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Admin-Token", a.cfg.AdminToken)

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("announcing to host registry: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("host registry returned status %d", resp.StatusCode)
	}

	return nil
}
