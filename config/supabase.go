package config

import (
	"fmt"

	postgrest "github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"
)

// InitSupabase builds the Supabase client. Only its storage
// API is used; table access goes through NewRestClient.
func InitSupabase(s *Settings) (*supa.Client, error) {
	if s.SupabaseURL == "" || s.SupabaseServiceKey == "" {
		return nil, fmt.Errorf("SUPABASE_URL and SUPABASE_SERVICE_KEY must be set in environment variables")
	}

	client, err := supa.NewClient(s.SupabaseURL, s.SupabaseServiceKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Supabase client: %w", err)
	}

	Log.Info("Supabase client initialized successfully.")
	return client, nil
}

// NewRestClient builds a PostgREST client against the project's REST endpoint.
func NewRestClient(s *Settings) (*postgrest.Client, error) {
	if s.SupabaseURL == "" || s.SupabaseServiceKey == "" {
		return nil, fmt.Errorf("SUPABASE_URL and SUPABASE_SERVICE_KEY must be set in environment variables")
	}

	client := postgrest.NewClient(s.SupabaseURL+"/rest/v1", "", map[string]string{
		"apikey":        s.SupabaseServiceKey,
		"Authorization": fmt.Sprintf("Bearer %s", s.SupabaseServiceKey),
	})
	if client.ClientError != nil {
		return nil, fmt.Errorf("failed to initialize PostgREST client: %w", client.ClientError)
	}
	return client, nil
}
