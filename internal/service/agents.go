package service

import (
	"fmt"
	"strings"
)

// Respuestas fijas de los agentes stub. Sin estado entre llamadas: cada
// agente matchea substrings del task e interpola parametros.

// ResumeAgentResponse responde tareas del agente de curriculums.
func ResumeAgentResponse(task string, params map[string]any) string {
	if strings.Contains(strings.ToLower(task), "revise") {
		return "Your resume has been revised with improved bullet points and formatting."
	}
	return "Resume draft created based on role: " + paramString(params, "role", "unspecified")
}

// StartupAgentResponse responde tareas del agente de startups.
func StartupAgentResponse(task string, params map[string]any) string {
	taskLower := strings.ToLower(task)
	industry := paramString(params, "industry", "tech")
	funding := paramString(params, "funding_stage", "pre-seed")
	goal := paramString(params, "goal", "build MVP")

	switch {
	case strings.Contains(taskLower, "pitch"):
		return fmt.Sprintf("Drafting pitch deck for a %s startup at %s stage focused on %s.", industry, funding, goal)
	case strings.Contains(taskLower, "mvp"), strings.Contains(taskLower, "build"):
		return fmt.Sprintf("Recommended MVP tools: Firebase, React, GPT API for your %s startup.", industry)
	default:
		return fmt.Sprintf("Startup advisory initialized for %s. Please provide more details.", industry)
	}
}

// TutorAgentResponse responde tareas del agente de tutoria.
func TutorAgentResponse(task string, params map[string]any) string {
	return fmt.Sprintf("Tutoring agent received task: %s with params %v", task, params)
}

func paramString(params map[string]any, key, fallback string) string {
	v, ok := params[key]
	if !ok || v == nil {
		return fallback
	}
	s := fmt.Sprint(v)
	if s == "" {
		return fallback
	}
	return s
}
