package mail

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string

	From       string
	AdminEmail string
	AppURL     string
}

type adminAlertData struct {
	FirstName    string
	BusinessName string
	Location     string
	Email        string
	Phone        string
	Extras       string
	Trade        string
	DashboardURL string
}

type confirmationData struct {
	FirstName    string
	BusinessName string
	Location     string
	Extras       string
}

type mockupReadyData struct {
	FirstName    string
	BusinessName string
	MockupURL    string
}
