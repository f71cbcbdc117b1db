package utils

import (
	"campusconnect/config"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-resty/resty/v2"
)

// RecommendationInput is the structured prompt fed to the external
// language-model service for personalized learning recommendations.
type RecommendationInput struct {
	CourseName        string `json:"courseName"`
	StudentProgress   string `json:"studentProgress"`
	LearningMaterials string `json:"learningMaterials"`
}

// FormatStudentProgress builds the progress summary string the model
// service expects from an enrollment's progress percentage.
func FormatStudentProgress(progress int) string {
	return fmt.Sprintf("Completed %d%% of the course.", progress)
}

// GetRecommendations calls the model service and returns free-text
// learning material recommendations.
func GetRecommendations(input RecommendationInput) (string, error) {
	prompt := fmt.Sprintf(
		"You are an AI learning assistant that provides personalized learning material recommendations to students based on their progress in a course.\n\n"+
			"Course Name: %s\nStudent Progress: %s\nAvailable Learning Materials: %s\n\n"+
			"Based on the student's progress and the available learning materials, provide a list of personalized recommendations. Return only the list of recommendations, do not add any extra explanation.",
		input.CourseName, input.StudentProgress, input.LearningMaterials,
	)

	return callModel(prompt)
}

// Chat relays a student message to the model service
func Chat(userName, message string) (string, error) {
	prompt := fmt.Sprintf(
		"You are CampusConnect's friendly learning assistant. Answer the student's question helpfully and concisely.\n\nStudent name: %s\nQuestion: %s",
		userName, message,
	)

	return callModel(prompt)
}

func callModel(prompt string) (string, error) {
	client := resty.New()
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+config.AppConfig.AIApiKey).
		SetBody(map[string]string{"prompt": prompt}).
		Post(config.AppConfig.AIApiURL)
	if err != nil {
		log.Printf("AI service request failed: %v", err)
		return "", err
	}
	if resp.StatusCode() != 200 {
		log.Printf("AI service returned %d: %s", resp.StatusCode(), resp.String())
		return "", fmt.Errorf("AI service returned status %d", resp.StatusCode())
	}

	var modelResp struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(resp.Body(), &modelResp); err != nil {
		log.Printf("Failed to parse AI response: %v", err)
		return "", err
	}

	return modelResp.Text, nil
}
