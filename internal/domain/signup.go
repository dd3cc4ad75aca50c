package domain

// Trigger sources that correspond to a genuine self-registration. Any other
// source passes through the sign-up hook without side effects.
const (
	TriggerSourceSignUp          = "PreSignUp_SignUp"
	TriggerSourceAdminCreateUser = "PreSignUp_AdminCreateUser"
)

// SignUpTrigger is the pre-sign-up event delivered by the identity provider.
// The hook mutates Response and echoes the event back.
type SignUpTrigger struct {
	TriggerSource string         `json:"triggerSource"`
	UserName      string         `json:"userName"`
	Request       SignUpRequest  `json:"request"`
	Response      SignUpResponse `json:"response"`
}

type SignUpRequest struct {
	UserAttributes map[string]string `json:"userAttributes"`
	ClientMetadata map[string]string `json:"clientMetadata"`
}

// SignUpResponse carries the auto-verification flags. The hook always sets
// all three to false, regardless of trigger source.
type SignUpResponse struct {
	AutoConfirmUser bool `json:"autoConfirmUser"`
	AutoVerifyPhone bool `json:"autoVerifyPhone"`
	AutoVerifyEmail bool `json:"autoVerifyEmail"`
}

// IsSignUp reports whether the trigger is a genuine sign-up event.
func (t *SignUpTrigger) IsSignUp() bool {
	return t.TriggerSource == TriggerSourceSignUp || t.TriggerSource == TriggerSourceAdminCreateUser
}
