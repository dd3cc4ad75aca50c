package domain

type UserType string

const (
	UserTypeHost  UserType = "host"
	UserTypeGuest UserType = "guest"
)

// Valid reports whether t is one of the recognized user types.
func (t UserType) Valid() bool {
	return t == UserTypeHost || t == UserTypeGuest
}

// User is the extended profile record kept alongside the identity provider
// account. The provider owns credentials and group membership; this record
// owns everything else.
type User struct {
	UserID              string              `json:"userId" dynamodbav:"userId"`
	Email               string              `json:"email" dynamodbav:"email"`
	Profile             Profile             `json:"profile" dynamodbav:"profile"`
	PersonalInformation PersonalInformation `json:"personalInformation" dynamodbav:"personalInformation"`
	FinanceInformation  FinanceInformation  `json:"financeInformation" dynamodbav:"financeInformation"`
	UserType            UserType            `json:"userType" dynamodbav:"userType"`
}

type Profile struct {
	AvatarPictureAddress string   `json:"avatarPictureAddress" dynamodbav:"avatarPictureAddress"`
	About                string   `json:"about" dynamodbav:"about"`
	WhereHaveBeen        []string `json:"whereHaveBeen" dynamodbav:"whereHaveBeen"`
	Hobby                []string `json:"hobby" dynamodbav:"hobby"`
	Languages            []string `json:"languages" dynamodbav:"languages"`
	FavoriteSong         string   `json:"favoriteSong" dynamodbav:"favoriteSong"`
	Location             string   `json:"location" dynamodbav:"location"`
	JoinDate             string   `json:"joinDate" dynamodbav:"joinDate"`
	School               string   `json:"school" dynamodbav:"school"`
	Work                 string   `json:"work" dynamodbav:"work"`
	BirthDecade          string   `json:"birthDecade" dynamodbav:"birthDecade"`
	FunFactUselessSkill  string   `json:"funFactUselessSkill" dynamodbav:"funFactUselessSkill"`
}

type PersonalInformation struct {
	LegalName          string           `json:"legalName" dynamodbav:"legalName"`
	PreferredFirstName string           `json:"preferredFirstName" dynamodbav:"preferredFirstName"`
	PhoneNumber        string           `json:"phoneNumber" dynamodbav:"phoneNumber"`
	Address            string           `json:"address" dynamodbav:"address"`
	EmergencyContact   EmergencyContact `json:"emergencyContact" dynamodbav:"emergencyContact"`
	GovernmentID       string           `json:"governmentID" dynamodbav:"governmentID"`
}

type EmergencyContact struct {
	Name         string `json:"name" dynamodbav:"name"`
	Phone        string `json:"phone" dynamodbav:"phone"`
	Relationship string `json:"relationship" dynamodbav:"relationship"`
}

type FinanceInformation struct {
	PaymentMethod      PaymentMethod     `json:"paymentMethod" dynamodbav:"paymentMethod"`
	PayoutInformation  PayoutInformation `json:"payoutInformation" dynamodbav:"payoutInformation"`
	CreditsCoupons     CreditsCoupons    `json:"creditsCoupons" dynamodbav:"creditsCoupons"`
	TaxInformation     TaxInformation    `json:"taxInformation" dynamodbav:"taxInformation"`
	TransactionHistory []any             `json:"transactionHistory" dynamodbav:"transactionHistory"`
}

type PaymentMethod struct {
	CardType       string `json:"cardType" dynamodbav:"cardType"`
	LastFourDigits string `json:"lastFourDigits" dynamodbav:"lastFourDigits"`
	ExpiryDate     string `json:"expiryDate" dynamodbav:"expiryDate"`
}

type PayoutInformation struct {
	BankName      string `json:"bankName" dynamodbav:"bankName"`
	AccountNumber string `json:"accountNumber" dynamodbav:"accountNumber"`
	RoutingNumber string `json:"routingNumber" dynamodbav:"routingNumber"`
}

type CreditsCoupons struct {
	TotalCredits  int      `json:"totalCredits" dynamodbav:"totalCredits"`
	ActiveCoupons []string `json:"activeCoupons" dynamodbav:"activeCoupons"`
}

type TaxInformation struct {
	TaxID     string `json:"taxID" dynamodbav:"taxID"`
	TaxStatus string `json:"taxStatus" dynamodbav:"taxStatus"`
}

// NewUser returns a profile record with every nested field defaulted to its
// empty value, as written at sign-up.
func NewUser(userID, email string, userType UserType, joinDate string) *User {
	return &User{
		UserID: userID,
		Email:  email,
		Profile: Profile{
			WhereHaveBeen: []string{},
			Hobby:         []string{},
			Languages:     []string{},
			JoinDate:      joinDate,
		},
		PersonalInformation: PersonalInformation{},
		FinanceInformation: FinanceInformation{
			CreditsCoupons: CreditsCoupons{
				ActiveCoupons: []string{},
			},
			TransactionHistory: []any{},
		},
		UserType: userType,
	}
}

// PublicUser is the reduced projection returned when the caller is not the
// record's owner.
type PublicUser struct {
	UserID   string   `json:"userId"`
	Email    string   `json:"email"`
	Profile  Profile  `json:"profile"`
	UserType UserType `json:"userType"`
}

// Public returns the reduced projection of u.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		UserID:   u.UserID,
		Email:    u.Email,
		Profile:  u.Profile,
		UserType: u.UserType,
	}
}

// FinancePatch is the partial update accepted by the user update operation.
// Exactly these three sub-objects may be written; anything else in the
// request body is ignored. Map keys are leaf attribute names within the
// corresponding financeInformation sub-object.
type FinancePatch struct {
	PaymentMethod     map[string]any `json:"paymentMethod,omitempty"`
	PayoutInformation map[string]any `json:"payoutInformation,omitempty"`
	TaxInformation    map[string]any `json:"taxInformation,omitempty"`
}

// Empty reports whether the patch carries no writable field.
func (p FinancePatch) Empty() bool {
	return len(p.PaymentMethod) == 0 && len(p.PayoutInformation) == 0 && len(p.TaxInformation) == 0
}
