package mailer

import "fmt"

// Template notifikasi user-lifecycle. Isi mengikuti email AMS lama.

func ConfirmationMessage(name, email, confirmLink string) Message {
	return Message{
		ToEmail: email,
		ToName:  name,
		Subject: "Welcome to attendance management system",
		Text: fmt.Sprintf(`Welcome to attendance management system!
Please confirm your account by opening this link:
%s

Note: Account confirmation is required for attendance marking.`, confirmLink),
	}
}

func DepartmentWelcomeMessage(department, email, password string) Message {
	return Message{
		ToEmail: email,
		ToName:  department,
		Subject: "Approve your account at Kampusku",
		Text: fmt.Sprintf(`An admin account for the %s department has been created.
Temporary password: %s
Please log in and change your password immediately.`, department, password),
	}
}

func TeacherWelcomeMessage(name, email, password string) Message {
	return Message{
		ToEmail: email,
		ToName:  name,
		Subject: "Your teacher account at Kampusku",
		Text: fmt.Sprintf(`A teacher account has been created for you.
Temporary password: %s
Please log in and change your password immediately.`, password),
	}
}

func PasswordResetMessage(name, email, resetLink string) Message {
	return Message{
		ToEmail: email,
		ToName:  name,
		Subject: "Your password reset token (valid for 10 min)",
		Text: fmt.Sprintf(`Forgot your password?
Open this link to set a new one:
%s

If you didn't request a password reset, please ignore this email.`, resetLink),
	}
}
