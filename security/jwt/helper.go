package jwt

import "time"

// getPayload extracts payload from token claims
func getPayload(claims map[string]any) (map[string]any, bool) {
	if payload, ok := claims["payload"].(map[string]any); ok {
		return payload, true
	}
	return nil, false
}

// getString safely extracts string value from payload
func getString(payload map[string]any, key string) string {
	if val, ok := payload[key].(string); ok {
		return val
	}
	return ""
}

// getBool safely extracts boolean value from payload
func getBool(payload map[string]any, key string) bool {
	if val, ok := payload[key].(bool); ok {
		return val
	}
	return false
}

// GetTokenIDFromToken extracts JWT ID (jti) from token claims
func GetTokenIDFromToken(claims map[string]any) string {
	if jti, ok := claims["jti"].(string); ok {
		return jti
	}
	return ""
}

// GetExpirationFromToken extracts expiration time from token claims
func GetExpirationFromToken(claims map[string]any) time.Time {
	if exp, ok := claims["exp"].(float64); ok && exp > 0 {
		return time.Unix(int64(exp), 0)
	}
	return time.Time{}
}

// GetUsernameFromToken extracts username from token claims
func GetUsernameFromToken(claims map[string]any) string {
	if payload, ok := getPayload(claims); ok {
		return getString(payload, "username")
	}
	return ""
}

// IsAdminFromToken checks if user is admin from token claims
func IsAdminFromToken(claims map[string]any) bool {
	if payload, ok := getPayload(claims); ok {
		return getBool(payload, "is_admin")
	}
	return false
}
