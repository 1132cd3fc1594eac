package handlers

import (
	"net/http"
	"os"
)

// DocHandler serves the static legal pages and the minimum supported
// client version, all reachable without authentication.
type DocHandler struct{}

func NewDocHandler() *DocHandler {
	return &DocHandler{}
}

// GET /api/v1/min-version - oldest client version still allowed to connect
func (h *DocHandler) ServeMinVersion(w http.ResponseWriter, r *http.Request) {
	minVersion := os.Getenv("MIN_APP_VERSION")
	if minVersion == "" {
		minVersion = "1.0.0"
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"min_version": minVersion})
}

func (h *DocHandler) ServePrivacyPolicy(w http.ResponseWriter, r *http.Request) {
	const privacyHTML = `
	<!DOCTYPE html>
	<html lang="en">
	<head>
		<meta charset="UTF-8">
		<meta name="viewport" content="width=device-width, initial-scale=1.0">
		<title>Privacy Policy - Evergreen Muse</title>
		<style>
			body {
				font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif;
				line-height: 1.6;
				color: #333;
				max-width: 800px;
				margin: 0 auto;
				padding: 20px;
				background-color: #f9f9f9;
			}
			.container {
				background-color: #fff;
				padding: 40px;
				border-radius: 8px;
				box-shadow: 0 2px 4px rgba(0,0,0,0.1);
			}
			h1 { color: #2c3e50; border-bottom: 2px solid #eee; padding-bottom: 10px; }
			h2 { color: #34495e; margin-top: 30px; }
			ul { margin-bottom: 20px; }
			li { margin-bottom: 8px; }
			.date { color: #7f8c8d; font-style: italic; margin-bottom: 20px; }
		</style>
	</head>
	<body>
		<div class="container">
			<h1>Privacy Policy</h1>
			<div class="date">Last updated: August 15, 2026</div>

			<p>Welcome to Evergreen Muse ("we", "our", or "us"). This Privacy Policy explains how we collect, use, and protect your information when you use our app.</p>

			<h2>1. Information We Collect</h2>
			<h3>a. Personal Information</h3>
			<p>When you sign in, we receive the following from your identity provider:</p>
			<ul>
				<li>Your name and username</li>
				<li>Your email address</li>
				<li>Your profile picture</li>
			</ul>

			<h3>b. Content You Create</h3>
			<ul>
				<li>Habits you track and the days you complete them</li>
				<li>Flashcards you create for spaced-repetition review</li>
				<li>Posts you share with the community</li>
			</ul>

			<h2>2. How We Use Your Information</h2>
			<ul>
				<li>To provide habit tracking, learning reviews, and the community feed</li>
				<li>To send you reminders and streak notifications you opt into</li>
				<li>To improve the service</li>
			</ul>

			<h2>3. Data Deletion</h2>
			<p>Deleting your account removes your profile, habits, flashcards, posts, and notifications from our systems.</p>
		</div>
	</body>
	</html>
	`

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(privacyHTML))
}

func (h *DocHandler) ServeTermsOfService(w http.ResponseWriter, r *http.Request) {
	const termsHTML = `
	<!DOCTYPE html>
	<html lang="en">
	<head>
		<meta charset="UTF-8">
		<meta name="viewport" content="width=device-width, initial-scale=1.0">
		<title>Terms of Service - Evergreen Muse</title>
		<style>
			body {
				font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif;
				line-height: 1.6;
				color: #333;
				max-width: 800px;
				margin: 0 auto;
				padding: 20px;
				background-color: #f9f9f9;
			}
			.container {
				background-color: #fff;
				padding: 40px;
				border-radius: 8px;
				box-shadow: 0 2px 4px rgba(0,0,0,0.1);
			}
			h1 { color: #2c3e50; border-bottom: 2px solid #eee; padding-bottom: 10px; }
			h2 { color: #34495e; margin-top: 30px; }
			.date { color: #7f8c8d; font-style: italic; margin-bottom: 20px; }
		</style>
	</head>
	<body>
		<div class="container">
			<h1>Terms of Service</h1>
			<div class="date">Last updated: August 15, 2026</div>

			<p>By using Evergreen Muse you agree to these terms.</p>

			<h2>1. Your Account</h2>
			<p>You are responsible for the content you create and share. Keep your credentials safe.</p>

			<h2>2. Community Content</h2>
			<p>Posts you share are visible to other users. Do not post content that is illegal, abusive, or infringes on the rights of others. We may remove content and suspend accounts that break these rules.</p>

			<h2>3. Service Availability</h2>
			<p>We provide the service as-is and may change or discontinue features at any time.</p>
		</div>
	</body>
	</html>
	`

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(termsHTML))
}
