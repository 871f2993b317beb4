package mailer

import "html/template"

// Compact ports of the site's operator/confirmation mail bodies.

var contactAdminTmpl = template.Must(template.New("contactAdmin").Parse(`<html>
<body style="font-family: 'Segoe UI', Arial, sans-serif; background: #f8f9fa;">
  <div style="max-width: 650px; margin: 0 auto; padding: 20px;">
    <div style="background: white; border-radius: 12px; overflow: hidden;">
      <div style="background: #4ADE80; padding: 30px 24px; text-align: center;">
        <h1 style="margin: 0; color: white;">New Contact Message</h1>
        <p style="margin: 8px 0 0 0; color: rgba(255,255,255,0.9);">NextGen EV Contact Form Submission</p>
      </div>
      <div style="padding: 32px 24px;">
        <p><strong>Sender Name:</strong> {{.Name}}</p>
        <p><strong>Subject:</strong> {{.Subject}}</p>
        <p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
        <p><strong>Phone:</strong> {{if .Phone}}{{.Phone}}{{else}}&mdash;{{end}}</p>
        <div style="border-left: 4px solid #4ADE80; padding: 16px; background: #f0fdf4;">
          <p style="white-space: pre-wrap;">{{.Message}}</p>
        </div>
      </div>
      <div style="background: #f9fafb; padding: 20px 24px; text-align: center; color: #6b7280; font-size: 12px;">
        Reply-To: {{.Email}}
      </div>
    </div>
  </div>
</body>
</html>`))

var contactUserTmpl = template.Must(template.New("contactUser").Parse(`<html>
<body style="font-family: 'Segoe UI', Arial, sans-serif; background: #f8f9fa;">
  <div style="max-width: 650px; margin: 0 auto; padding: 20px;">
    <div style="background: white; border-radius: 12px; overflow: hidden;">
      <div style="background: #4ADE80; padding: 40px 24px; text-align: center;">
        <h1 style="margin: 0; color: white;">Message Received!</h1>
      </div>
      <div style="padding: 32px 24px; text-align: center;">
        <p>Hi <strong>{{.Name}}</strong>,</p>
        <p style="color: #6b7280;">Thank you for reaching out to NextGen EV! We've successfully
        received your message and appreciate your interest in our electric vehicles.</p>
        <div style="border-left: 4px solid #4ADE80; padding: 16px; background: #f0fdf4; text-align: left;">
          <p style="white-space: pre-wrap;">{{.Message}}</p>
        </div>
        <p style="color: #6b7280;">Our team will review your inquiry and get back to you as soon as possible.</p>
      </div>
      <div style="background: #f9fafb; padding: 24px; text-align: center; color: #6b7280; font-size: 13px;">
        <p><strong>Email:</strong> support@nextgeneev.com<br><strong>Phone:</strong> +91 9876543210</p>
        <p style="font-size: 11px;">This is an automated response. Do not reply to this email.</p>
      </div>
    </div>
  </div>
</body>
</html>`))

var dealershipAdminTmpl = template.Must(template.New("dealershipAdmin").Parse(`<html>
<body style="font-family: 'Segoe UI', Arial, sans-serif; background: #f8f9fa;">
  <div style="max-width: 650px; margin: 0 auto; padding: 20px;">
    <div style="background: white; border-radius: 12px; overflow: hidden;">
      <div style="background: #4ADE80; padding: 30px 24px; text-align: center;">
        <h1 style="margin: 0; color: white;">New Dealership Request</h1>
        <p style="margin: 8px 0 0 0; color: rgba(255,255,255,0.9);">NextGen EV</p>
      </div>
      <div style="padding: 32px 24px;">
        <p><strong>Name:</strong> {{.Name}}</p>
        <p><strong>Location:</strong> {{.Location}}</p>
        <p><strong>Email:</strong> {{.Email}}</p>
        <p><strong>Phone:</strong> {{.Phone}}</p>
        <div style="border-left: 4px solid #4ADE80; padding: 16px; background: #f0fdf4;">
          <p style="white-space: pre-wrap;">{{if .Message}}{{.Message}}{{else}}(No message){{end}}</p>
        </div>
      </div>
      <div style="background: #f9fafb; padding: 20px 24px; text-align: center; color: #6b7280; font-size: 12px;">
        Reply-To: {{.Email}}
      </div>
    </div>
  </div>
</body>
</html>`))

var dealershipUserTmpl = template.Must(template.New("dealershipUser").Parse(`<html>
<body style="font-family: 'Segoe UI', Arial, sans-serif; background: #f8f9fa;">
  <div style="max-width: 650px; margin: 0 auto; padding: 20px;">
    <div style="background: white; border-radius: 12px; overflow: hidden;">
      <div style="background: #4ADE80; padding: 40px 24px; text-align: center;">
        <h1 style="margin: 0; color: white;">Dealership Request Received!</h1>
      </div>
      <div style="padding: 32px 24px; text-align: center;">
        <p>Hi <strong>{{.Name}}</strong>,</p>
        <p style="color: #6b7280;">Thank you for your interest in becoming a NextGen EV dealer!
        We've received your inquiry and will contact you within 24-48 hours.</p>
      </div>
      <div style="background: #f9fafb; padding: 24px; text-align: center; color: #6b7280; font-size: 13px;">
        <p><strong>Email:</strong> dealership@nextgeneev.com</p>
        <p><strong>Phone:</strong> +91 9876543210</p>
      </div>
    </div>
  </div>
</body>
</html>`))
