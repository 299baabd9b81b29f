package email

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/learnnect/otp-backend/internal/domain"
)

// Template rendering for the OTP and confirmation emails. User-supplied
// values (name, message, course interest) pass through html/template so
// they are escaped before reaching the recipient's inbox.

const footerHTML = `
<div style="text-align: center; margin-top: 40px; padding-top: 24px; border-top: 1px solid rgba(255,255,255,0.1);">
  <div style="font-size: 24px; font-weight: bold; color: #00ffff; margin-bottom: 6px;">Learnnect</div>
  <p style="color: #a0a0a0; margin: 0 0 10px 0; font-size: 13px;">Learn, Connect, Succeed</p>
  <p style="color: #a0a0a0; margin: 0 0 6px 0; font-size: 13px;">
    <a href="mailto:support@learnnect.com" style="color: #00ffff; text-decoration: none;">support@learnnect.com</a>
  </p>
  <p style="color: #666; margin: 0; font-size: 12px;">&copy; 2024 Learnnect EdTech Platform. All rights reserved.</p>
</div>`

const pageTmpl = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
</head>
<body style="margin: 0; padding: 0; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background: linear-gradient(135deg, #0f0f23 0%, #1a1a2e 50%, #16213e 100%);">
  <div style="max-width: 600px; margin: 0 auto; padding: 40px 20px;">
    <div style="text-align: center; margin-bottom: 40px;">
      <div style="font-size: 36px; font-weight: bold; color: #00ffff; margin-bottom: 10px;">Learnnect</div>
      <p style="color: #00ffff; margin: 0; font-size: 16px; font-weight: 500;">Learn, Connect, Succeed</p>
    </div>
    <div style="background: rgba(255,255,255,0.05); border-radius: 20px; padding: 40px; border: 1px solid rgba(0,255,255,0.2);">
      <h1 style="color: #00ffff; text-align: center; margin-bottom: 20px; font-size: 26px;">{{.Heading}}</h1>
      {{.Body}}
    </div>
    {{.Footer}}
  </div>
</body>
</html>`

const otpBodyTmpl = `
<p style="color: #ffffff; font-size: 16px; line-height: 1.6; text-align: center; margin-bottom: 30px;">{{.Subtext}}</p>
<div style="text-align: center; margin: 40px 0;">
  <p style="color: #a0a0a0; font-size: 14px; margin-bottom: 15px;">Your verification code:</p>
  <div style="display: inline-block; background: linear-gradient(45deg, #ff0080, #00ffff); padding: 20px 40px; border-radius: 15px; font-size: 32px; font-weight: bold; color: #ffffff; letter-spacing: 8px;">{{.Code}}</div>
</div>
<p style="color: #a0a0a0; font-size: 14px; text-align: center;">This code expires in <strong style="color: #00ffff;">10 minutes</strong>.</p>
<div style="background: rgba(255,0,128,0.1); border: 1px solid rgba(255,0,128,0.3); border-radius: 10px; padding: 20px; margin-top: 30px;">
  <h3 style="color: #ff0080; margin: 0 0 15px 0; font-size: 16px;">Security First</h3>
  <ul style="color: #ffffff; font-size: 14px; line-height: 1.6; margin: 0; padding-left: 20px;">
    <li>Never share this code with anyone</li>
    <li>Learnnect will never ask for this code via phone or email</li>
    <li>Didn't request this? Just ignore this email</li>
  </ul>
</div>`

const welcomeBodyTmpl = `
<p style="color: #ffffff; font-size: 18px; line-height: 1.6; text-align: center; margin-bottom: 30px;">
  Welcome to the squad, {{.Name}}! You just joined thousands of ambitious learners transforming their careers.
</p>
<div style="border: 1px solid rgba(0,255,255,0.3); border-radius: 15px; padding: 25px; margin: 25px 0; color: #ffffff; font-size: 15px; line-height: 1.7;">
  <p style="margin: 0 0 12px 0;"><strong>Project-Based Learning:</strong> build real-world projects employers want to see</p>
  <p style="margin: 0 0 12px 0;"><strong>3-Phase Curriculum:</strong> Foundations, Core+Advanced, Interview Prep</p>
  <p style="margin: 0 0 12px 0;"><strong>Career Support:</strong> resume building, mock interviews, job updates</p>
  <p style="margin: 0;"><strong>Dual Certifications:</strong> Learnnect + AICTE certified courses</p>
</div>
<div style="text-align: center; margin: 40px 0;">
  <a href="https://learnnect.com/dashboard" style="display: inline-block; background: linear-gradient(45deg, #ff0080, #00ffff); color: white; padding: 15px 40px; text-decoration: none; border-radius: 25px; font-weight: bold;">Start Learning Now</a>
</div>`

const contactBodyTmpl = `
<p style="color: #ffffff; font-size: 16px; line-height: 1.6; text-align: center; margin-bottom: 25px;">
  Hey {{.Name}}! Thanks for dropping us a message. We've received it and our team will get back to you within 24 hours.
</p>
{{if .Message}}
<div style="background: rgba(0,255,255,0.05); border: 1px solid rgba(0,255,255,0.2); border-radius: 10px; padding: 20px; margin: 25px 0;">
  <h3 style="color: #00ffff; margin: 0 0 10px 0; font-size: 16px;">Your Message:</h3>
  <p style="color: #ffffff; margin: 0; font-style: italic;">"{{.Message}}"</p>
</div>
{{end}}`

const enquiryBodyTmpl = `
<p style="color: #ffffff; font-size: 16px; line-height: 1.6; text-align: center; margin-bottom: 25px;">
  Awesome choice, {{.Name}}! Thanks for your interest in
  {{if .CourseInterest}}<strong style="color: #ff0080;">{{.CourseInterest}}</strong>{{else}}our courses{{end}}.
</p>
<div style="border: 1px solid rgba(0,255,255,0.3); border-radius: 15px; padding: 25px; margin: 25px 0; color: #ffffff; font-size: 14px; line-height: 1.6;">
  <h3 style="color: #ff0080; margin: 0 0 15px 0; font-size: 18px; text-align: center;">What Happens Next?</h3>
  <p style="margin: 0 0 10px 0;">Our course advisor will call you within 2-4 hours</p>
  <p style="margin: 0 0 10px 0;">We'll discuss your career goals and learning preferences</p>
  <p style="margin: 0;">You'll get a personalized learning roadmap</p>
</div>`

const newsletterBodyTmpl = `
<p style="color: #ffffff; font-size: 16px; line-height: 1.6; text-align: center; margin-bottom: 30px;">
  Hey {{.Name}}! You just joined our exclusive newsletter community.
</p>
<div style="border: 1px solid rgba(0,255,255,0.3); border-radius: 15px; padding: 25px; margin: 25px 0; color: #ffffff; font-size: 14px; line-height: 1.6;">
  <h3 style="color: #ff0080; margin: 0 0 15px 0; font-size: 18px; text-align: center;">What's Coming Your Way?</h3>
  <p style="margin: 0 0 12px 0;"><strong>Latest Course Updates:</strong> new courses and features first</p>
  <p style="margin: 0 0 12px 0;"><strong>Industry Insights:</strong> trends and career advice from the tech world</p>
  <p style="margin: 0 0 12px 0;"><strong>Exclusive Offers:</strong> subscriber-only discounts and early-bird pricing</p>
  <p style="margin: 0;"><strong>Success Stories:</strong> real stories from learners who landed their dream jobs</p>
</div>
<p style="color: #a0a0a0; font-size: 13px; text-align: center; margin-top: 30px;">You can unsubscribe anytime.</p>`

var (
	page       = template.Must(template.New("page").Parse(pageTmpl))
	otpBody    = template.Must(template.New("otp").Parse(otpBodyTmpl))
	welcome    = template.Must(template.New("welcome").Parse(welcomeBodyTmpl))
	contact    = template.Must(template.New("contact").Parse(contactBodyTmpl))
	enquiry    = template.Must(template.New("enquiry").Parse(enquiryBodyTmpl))
	newsletter = template.Must(template.New("newsletter").Parse(newsletterBodyTmpl))
)

func renderPage(title, heading string, body *template.Template, data any) (string, error) {
	var inner strings.Builder
	if err := body.Execute(&inner, data); err != nil {
		return "", err
	}
	var out strings.Builder
	err := page.Execute(&out, struct {
		Title, Heading string
		Body, Footer   template.HTML
	}{title, heading, template.HTML(inner.String()), template.HTML(footerHTML)})
	return out.String(), err
}

// RenderOTP renders the verification-code email for the given purpose.
// The subject carries the code itself.
func RenderOTP(code string, purpose domain.Purpose) (subject, html string, err error) {
	heading := map[domain.Purpose]string{
		domain.PurposeSignup:       "Welcome Aboard!",
		domain.PurposeLogin:        "Quick Security Check",
		domain.PurposeVerification: "Let's Verify You're You!",
	}[purpose]
	subtext := map[domain.Purpose]string{
		domain.PurposeSignup:       "You're one step away from joining the future of learning!",
		domain.PurposeLogin:        "Just making sure it's really you trying to access your account.",
		domain.PurposeVerification: "Quick verification to keep your account secure and sound.",
	}[purpose]

	subject = fmt.Sprintf("Learnnect - Your Verification Code: %s", code)
	html, err = renderPage("Learnnect - "+heading, heading, otpBody, struct {
		Code, Subtext string
	}{code, subtext})
	return subject, html, err
}

// RenderConfirmation renders one of the transactional confirmation
// emails. fromName is the display name the provider should send as.
func RenderConfirmation(t domain.EmailType, data domain.TemplateData) (fromName, subject, html string, err error) {
	name := data.Name

	switch t {
	case domain.EmailWelcome:
		if name == "" {
			name = "Future Learner"
		}
		html, err = renderPage("Welcome to Learnnect!", "Your Learning Journey Starts Now!", welcome, struct{ Name string }{name})
		return "Learnnect - Support Team", "Welcome to the Future of Learning!", html, err
	case domain.EmailContact:
		if name == "" {
			name = "there"
		}
		html, err = renderPage("Thanks for Contacting Learnnect!", "We've Got You Covered", contact, struct{ Name, Message string }{name, data.Message})
		return "Learnnect - Support Team", "Thanks for Reaching Out! We've Got You Covered", html, err
	case domain.EmailEnquiry:
		if name == "" {
			name = "Future Learner"
		}
		html, err = renderPage("Course Enquiry Received!", "Let's Make It Happen!", enquiry, struct{ Name, CourseInterest string }{name, data.CourseInterest})
		return "Learnnect - Support Team", "Your Course Enquiry - Let's Make It Happen!", html, err
	case domain.EmailNewsletter:
		if name == "" {
			name = "Learning Enthusiast"
		}
		html, err = renderPage("Newsletter Subscription Confirmed!", "You're In! Welcome to the Inner Circle", newsletter, struct{ Name string }{name})
		return "Learnnect Newsletter", "Welcome to the Learnnect Newsletter!", html, err
	default:
		return "", "", "", fmt.Errorf("unknown email type %q: %w", t, domain.ErrBadRequest)
	}
}
