package easyverein

// Invoice kinds accepted by the API.
const (
	InvoiceKindBalance    = "balance"
	InvoiceKindDonation   = "donation"
	InvoiceKindMembership = "membership"
	InvoiceKindRevenue    = "revenue"
	InvoiceKindExpense    = "expense"
	InvoiceKindCancel     = "cancel"
	InvoiceKindCredit     = "credit"
)

// ContactDetails is an address-book entry. Contact details exist
// independently of members, but every member links to exactly one.
type ContactDetails struct {
	RecordBase

	IsCompany                 *bool   `json:"_isCompany,omitempty"`
	Salutation                *string `json:"salutation,omitempty"`
	FirstName                 *string `json:"firstName,omitempty"`
	FamilyName                *string `json:"familyName,omitempty"`
	NameAffix                 *string `json:"nameAffix,omitempty"`
	DateOfBirth               *Date   `json:"dateOfBirth,omitempty"`
	InternalNote              *string `json:"internalNote,omitempty"`
	PrivateEmail              *string `json:"privateEmail,omitempty"`
	CompanyEmail              *string `json:"companyEmail,omitempty"`
	CompanyEmailInvoice       *string `json:"companyEmailInvoice,omitempty"`
	PrimaryEmail              *string `json:"primaryEmail,omitempty"`
	PreferredEmailField       *int    `json:"_preferredEmailField,omitempty"`
	PreferredCommunicationWay *int    `json:"preferredCommunicationWay,omitempty"`
	CompanyName               *string `json:"companyName,omitempty"`
	InvoiceCompany            *bool   `json:"invoiceCompany,omitempty"`
	SendInvoiceCompanyMail    *bool   `json:"sendInvoiceCompanyMail,omitempty"`
	AddressCompany            *bool   `json:"addressCompany,omitempty"`
	PrivatePhone              *string `json:"privatePhone,omitempty"`
	CompanyPhone              *string `json:"companyPhone,omitempty"`
	MobilePhone               *string `json:"mobilePhone,omitempty"`
	Street                    *string `json:"street,omitempty"`
	City                      *string `json:"city,omitempty"`
	State                     *string `json:"state,omitempty"`
	// Misspelled on the wire as well.
	AdditionalAdressInfo *string    `json:"additionalAdressInfo,omitempty"`
	Zip                  *string    `json:"zip,omitempty"`
	Country              *string    `json:"country,omitempty"`
	CompanyStreet        *string    `json:"companyStreet,omitempty"`
	CompanyCity          *string    `json:"companyCity,omitempty"`
	CompanyState         *string    `json:"companyState,omitempty"`
	CompanyZip           *string    `json:"companyZip,omitempty"`
	CompanyCountry       *string    `json:"companyCountry,omitempty"`
	ProfessionalRole     *string    `json:"professionalRole,omitempty"`
	Balance              *float64   `json:"balance,omitempty"`
	IBAN                 *string    `json:"iban,omitempty"`
	BIC                  *string    `json:"bic,omitempty"`
	BankAccountOwner     *string    `json:"bankAccountOwner,omitempty"`
	SepaMandate          *string    `json:"sepaMandate,omitempty"`
	SepaDate             *Timestamp `json:"sepaDate,omitempty"`
	MethodOfPayment      *int       `json:"methodOfPayment,omitempty"`
	DatevAccountNumber   *int       `json:"datevAccountNumber,omitempty"`
}

// ContactDetailsCreate is the creation payload. IsCompany is mandatory.
type ContactDetailsCreate struct {
	IsCompany bool `json:"_isCompany"`

	ContactDetailsUpdate
}

// ContactDetailsUpdate is the partial-update payload. Only assigned
// fields are serialized.
type ContactDetailsUpdate struct {
	Salutation                *string    `json:"salutation,omitempty"`
	FirstName                 *string    `json:"firstName,omitempty"`
	FamilyName                *string    `json:"familyName,omitempty"`
	NameAffix                 *string    `json:"nameAffix,omitempty"`
	DateOfBirth               *Date      `json:"dateOfBirth,omitempty"`
	InternalNote              *string    `json:"internalNote,omitempty"`
	PrivateEmail              *string    `json:"privateEmail,omitempty"`
	CompanyEmail              *string    `json:"companyEmail,omitempty"`
	CompanyEmailInvoice       *string    `json:"companyEmailInvoice,omitempty"`
	PrimaryEmail              *string    `json:"primaryEmail,omitempty"`
	PreferredEmailField       *int       `json:"_preferredEmailField,omitempty"`
	PreferredCommunicationWay *int       `json:"preferredCommunicationWay,omitempty"`
	CompanyName               *string    `json:"companyName,omitempty"`
	InvoiceCompany            *bool      `json:"invoiceCompany,omitempty"`
	SendInvoiceCompanyMail    *bool      `json:"sendInvoiceCompanyMail,omitempty"`
	AddressCompany            *bool      `json:"addressCompany,omitempty"`
	PrivatePhone              *string    `json:"privatePhone,omitempty"`
	CompanyPhone              *string    `json:"companyPhone,omitempty"`
	MobilePhone               *string    `json:"mobilePhone,omitempty"`
	Street                    *string    `json:"street,omitempty"`
	City                      *string    `json:"city,omitempty"`
	State                     *string    `json:"state,omitempty"`
	AdditionalAdressInfo      *string    `json:"additionalAdressInfo,omitempty"`
	Zip                       *string    `json:"zip,omitempty"`
	Country                   *string    `json:"country,omitempty"`
	CompanyStreet             *string    `json:"companyStreet,omitempty"`
	CompanyCity               *string    `json:"companyCity,omitempty"`
	CompanyState              *string    `json:"companyState,omitempty"`
	CompanyZip                *string    `json:"companyZip,omitempty"`
	CompanyCountry            *string    `json:"companyCountry,omitempty"`
	ProfessionalRole          *string    `json:"professionalRole,omitempty"`
	IBAN                      *string    `json:"iban,omitempty"`
	BIC                       *string    `json:"bic,omitempty"`
	BankAccountOwner          *string    `json:"bankAccountOwner,omitempty"`
	SepaMandate               *string    `json:"sepaMandate,omitempty"`
	SepaDate                  *Timestamp `json:"sepaDate,omitempty"`
	MethodOfPayment           *int       `json:"methodOfPayment,omitempty"`
	DatevAccountNumber        *int       `json:"datevAccountNumber,omitempty"`
}

// ContactDetailsFilter selects contact-details records on list requests.
type ContactDetailsFilter struct {
	IDIn             IntList `filter:"id__in"`
	Country          *string `filter:"country"`
	IsCompany        *bool   `filter:"_isCompany"`
	FirstName        *string `filter:"firstName"`
	FamilyName       *string `filter:"familyName"`
	CompanyName      *string `filter:"companyName"`
	DateOfBirthUnset *bool   `filter:"dateOfBirthUnset"`
	Deleted          *bool   `filter:"deleted"`
	Ordering         *string `filter:"ordering"`
	Search           *string `filter:"search"`
}

// Member is a club member. Underscore-prefixed wire fields are managed by
// the portal and exposed read-mostly.
type Member struct {
	RecordBase

	ProfilePicture                   *string    `json:"_profilePicture,omitempty"`
	JoinDate                         *Timestamp `json:"joinDate,omitempty"`
	ResignationDate                  *Timestamp `json:"resignationDate,omitempty"`
	IsChairman                       *bool      `json:"_isChairman,omitempty"`
	ChairmanPermissionGroup          *string    `json:"_chairmanPermissionGroup,omitempty"`
	DeclarationOfApplication         *string    `json:"declarationOfApplication,omitempty"`
	DeclarationOfResignation         *string    `json:"declarationOfResignation,omitempty"`
	DeclarationOfConsent             *string    `json:"declarationOfConsent,omitempty"`
	MembershipNumber                 *string    `json:"membershipNumber,omitempty"`
	ContactDetails                   *Ref       `json:"contactDetails,omitempty"`
	PaymentStartDate                 *Timestamp `json:"_paymentStartDate,omitempty"`
	PaymentAmount                    *float64   `json:"paymentAmount,omitempty"`
	PaymentIntervallMonths           *int       `json:"paymentIntervallMonths,omitempty"`
	UseBalanceForMembershipFee       *bool      `json:"useBalanceForMembershipFee,omitempty"`
	BulletinBoardNewPostNotification *bool      `json:"bulletinBoardNewPostNotification,omitempty"`
	IntegrationDosbGender            *string    `json:"integrationDosbGender,omitempty"`
	IsApplication                    *bool      `json:"_isApplication,omitempty"`
	ApplicationDate                  *Date      `json:"_applicationDate,omitempty"`
	ApplicationWasAcceptedAt         *Date      `json:"_applicationWasAcceptedAt,omitempty"`
	SignatureText                    *string    `json:"signatureText,omitempty"`
	RelatedMember                    *Ref       `json:"_relatedMember,omitempty"`
	EditableByRelatedMembers         *bool      `json:"_editableByRelatedMembers,omitempty"`
	SepaMandateFile                  *string    `json:"sepaMandateFile,omitempty"`
	CustomFields                     []Ref      `json:"customFields,omitempty"`
	MemberGroups                     []Ref      `json:"memberGroups,omitempty"`
}

// MemberCreate is the creation payload. A login email (or username) and a
// linked contact-details record are mandatory. Setting IsApplication
// creates a membership application instead of a full member.
type MemberCreate struct {
	EmailOrUserName string `json:"emailOrUserName"`
	ContactDetails  *Ref   `json:"contactDetails"`

	MemberUpdate
}

// MemberUpdate is the partial-update payload.
type MemberUpdate struct {
	ProfilePicture             *string    `json:"_profilePicture,omitempty"`
	JoinDate                   *Timestamp `json:"joinDate,omitempty"`
	ResignationDate            *Timestamp `json:"resignationDate,omitempty"`
	IsChairman                 *bool      `json:"_isChairman,omitempty"`
	ChairmanPermissionGroup    *string    `json:"_chairmanPermissionGroup,omitempty"`
	MembershipNumber           *string    `json:"membershipNumber,omitempty"`
	PaymentStartDate           *Timestamp `json:"_paymentStartDate,omitempty"`
	PaymentAmount              *float64   `json:"paymentAmount,omitempty"`
	PaymentIntervallMonths     *int       `json:"paymentIntervallMonths,omitempty"`
	UseBalanceForMembershipFee *bool      `json:"useBalanceForMembershipFee,omitempty"`
	IntegrationDosbGender      *string    `json:"integrationDosbGender,omitempty"`
	IsApplication              *bool      `json:"_isApplication,omitempty"`
	SignatureText              *string    `json:"signatureText,omitempty"`
}

// MemberFilter selects members on list requests.
type MemberFilter struct {
	IDIn                  IntList    `filter:"id__in"`
	Email                 *string    `filter:"email"`
	MembershipNumber      *string    `filter:"membershipNumber"`
	MembershipNumberIn    StrList    `filter:"membershipNumber__in"`
	PaymentAmount         *float64   `filter:"paymentAmount"`
	PaymentAmountGT       *float64   `filter:"paymentAmount__gt"`
	PaymentAmountLT       *float64   `filter:"paymentAmount__lt"`
	JoinDateGTE           *Timestamp `filter:"joinDate__gte"`
	JoinDateLTE           *Timestamp `filter:"joinDate__lte"`
	ResignationDateIsNull *bool      `filter:"resignationDate__isnull"`
	IsApplication         *bool      `filter:"_isApplication"`
	IsChairman            *bool      `filter:"_isChairman"`
	MemberGroups          IntList    `filter:"memberGroups"`
	MemberGroupsNot       IntList    `filter:"memberGroups__not"`
	DeletedByIsNull       *bool      `filter:"_deletedBy__isnull"`
	Deleted               *bool      `filter:"deleted"`
	CustomFieldName       *string    `filter:"custom_field_name"`
	CustomFieldValue      *string    `filter:"custom_field_value"`
	CustomFieldValueIn    StrList    `filter:"custom_field_value__in"`
	Ordering              *string    `filter:"ordering"`
	Search                *string    `filter:"search"`
}

// MemberGroup is a category of members, used for permissions, fee
// calculation and messaging. Group membership itself is managed through
// the member-member-group endpoint.
type MemberGroup struct {
	RecordBase

	Name                         *string  `json:"name,omitempty"`
	Color                        *string  `json:"color,omitempty"`
	Short                        *string  `json:"short,omitempty"`
	UserGroupAccount             *Ref     `json:"userGroupAccount,omitempty"`
	PaymentAmount                *float64 `json:"paymentAmount,omitempty"`
	AssignmentDeleteAfterBooking *bool    `json:"assignmentDeleteAfterBooking,omitempty"`
	UsePaymentFormula            *bool    `json:"usePaymentFormula,omitempty"`
	PaymentFormula               *string  `json:"paymentFormula,omitempty"`
	PaymentInterval              *int     `json:"paymentInterval,omitempty"`
	NameOnInvoice                *string  `json:"nameOnInvoice,omitempty"`
	DescriptionOnInvoice         *string  `json:"descriptionOnInvoice,omitempty"`
	ShowInApplicationform        *bool    `json:"showInApplicationform,omitempty"`
	AgePermission                *int     `json:"agePermission,omitempty"`
	NextGroup                    *Ref     `json:"nextGroup,omitempty"`
	TaxRate                      *float64 `json:"taxRate,omitempty"`
	BillingAccount               *Ref     `json:"billingAccount,omitempty"`
	CostCentre                   *string  `json:"costCentre,omitempty"`
	IsOnlyVisibleToAdmins        *bool    `json:"isOnlyVisibleToAdmins,omitempty"`

	// Permission flags, each one of "n" (standard), "a" (allowed) and
	// "d" (forbidden); user_members_groupaccess also accepts "x".
	UserShares             *string `json:"user_shares,omitempty"`
	UserBookings           *string `json:"user_bookings,omitempty"`
	UserProtocols          *string `json:"user_protocols,omitempty"`
	UserMembers            *string `json:"user_members,omitempty"`
	UserMembersGroupaccess *string `json:"user_members_groupaccess,omitempty"`
	UserMembershipCte      *string `json:"user_membershipCte,omitempty"`
	UserEdit               *string `json:"user_edit,omitempty"`
	UserForum              *string `json:"user_forum,omitempty"`
	UserBoard              *string `json:"user_board,omitempty"`
	UserBoardLinks         *string `json:"user_boardLinks,omitempty"`
	UserImportcalendar     *string `json:"user_importcalendar,omitempty"`
	UserInvoiceRequest     *string `json:"user_invoiceRequest,omitempty"`
	UserInventory          *string `json:"user_inventory,omitempty"`
}

// MemberGroupCreate is the creation payload. Name, color and short code
// are mandatory.
type MemberGroupCreate struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Short string `json:"short"`

	MemberGroupUpdate
}

// MemberGroupUpdate is the partial-update payload.
type MemberGroupUpdate struct {
	PaymentAmount         *float64 `json:"paymentAmount,omitempty"`
	UsePaymentFormula     *bool    `json:"usePaymentFormula,omitempty"`
	PaymentFormula        *string  `json:"paymentFormula,omitempty"`
	PaymentInterval       *int     `json:"paymentInterval,omitempty"`
	NameOnInvoice         *string  `json:"nameOnInvoice,omitempty"`
	DescriptionOnInvoice  *string  `json:"descriptionOnInvoice,omitempty"`
	ShowInApplicationform *bool    `json:"showInApplicationform,omitempty"`
	AgePermission         *int     `json:"agePermission,omitempty"`
	TaxRate               *float64 `json:"taxRate,omitempty"`
	CostCentre            *string  `json:"costCentre,omitempty"`
	IsOnlyVisibleToAdmins *bool    `json:"isOnlyVisibleToAdmins,omitempty"`
}

// MemberGroupFilter selects member groups on list requests.
type MemberGroupFilter struct {
	IDIn            IntList  `filter:"id__in"`
	Name            *string  `filter:"name"`
	PaymentAmount   *float64 `filter:"paymentAmount"`
	PaymentAmountGT *float64 `filter:"paymentAmount__gt"`
	PaymentAmountLT *float64 `filter:"paymentAmount__lt"`
	Deleted         *bool    `filter:"deleted"`
	Ordering        *string  `filter:"ordering"`
}

// MemberMemberGroup links a member to a group. PaymentActive controls
// whether the group's billing settings apply to the member's fee.
type MemberMemberGroup struct {
	RecordBase

	UserObject    *Ref     `json:"userObject,omitempty"`
	MemberGroup   *Ref     `json:"memberGroup,omitempty"`
	PaymentAmount *float64 `json:"paymentAmount,omitempty"`
	PaymentActive *bool    `json:"paymentActive,omitempty"`
	Start         *Date    `json:"start,omitempty"`
	End           *Date    `json:"end,omitempty"`
}

// MemberMemberGroupCreate is the creation payload.
type MemberMemberGroupCreate struct {
	MemberGroup   *Ref     `json:"memberGroup"`
	PaymentActive bool     `json:"paymentActive"`
	PaymentAmount *float64 `json:"paymentAmount,omitempty"`
	Start         *Date    `json:"start,omitempty"`
	End           *Date    `json:"end,omitempty"`
}

// MemberMemberGroupUpdate is the partial-update payload.
type MemberMemberGroupUpdate struct {
	PaymentActive *bool    `json:"paymentActive,omitempty"`
	PaymentAmount *float64 `json:"paymentAmount,omitempty"`
	Start         *Date    `json:"start,omitempty"`
	End           *Date    `json:"end,omitempty"`
}

// MemberMemberGroupFilter selects group assignments on list requests.
type MemberMemberGroupFilter struct {
	IDIn          IntList `filter:"id__in"`
	PaymentActive *bool   `filter:"paymentActive"`
	MemberGroup   *int64  `filter:"memberGroup"`
	MemberGroupIn IntList `filter:"memberGroup__in"`
	StartGTE      *Date   `filter:"start__gte"`
	StartLTE      *Date   `filter:"start__lte"`
	EndGTE        *Date   `filter:"end__gte"`
	EndLTE        *Date   `filter:"end__lte"`
	Deleted       *bool   `filter:"deleted"`
	Ordering      *string `filter:"ordering"`
}

// Invoice is a bookkeeping invoice. Invoices created as drafts can have
// items attached; clearing IsDraft triggers PDF generation server-side.
type Invoice struct {
	RecordBase

	Gross                   *bool    `json:"gross,omitempty"`
	CanceledInvoice         *string  `json:"canceledInvoice,omitempty"`
	CancellationDescription *string  `json:"cancellationDescription,omitempty"`
	TemplateName            *string  `json:"templateName,omitempty"`
	Date                    *Date    `json:"date,omitempty"`
	DateItHappend           *Date    `json:"dateItHappend,omitempty"`
	DateSent                *Date    `json:"dateSent,omitempty"`
	InvNumber               *string  `json:"invNumber,omitempty"`
	Receiver                *string  `json:"receiver,omitempty"`
	Description             *string  `json:"description,omitempty"`
	TotalPrice              *float64 `json:"totalPrice,omitempty"`
	Tax                     *float64 `json:"tax,omitempty"`
	TaxRate                 *float64 `json:"taxRate,omitempty"`
	TaxName                 *string  `json:"taxName,omitempty"`
	RelatedAddress          *Ref     `json:"relatedAddress,omitempty"`
	Path                    *Ref     `json:"path,omitempty"`
	Kind                    *string  `json:"kind,omitempty"`
	SelectionAcc            *Ref     `json:"selectionAcc,omitempty"`
	RefNumber               *string  `json:"refNumber,omitempty"`
	PaymentDifference       *float64 `json:"paymentDifference,omitempty"`
	IsDraft                 *bool    `json:"isDraft,omitempty"`
	IsTemplate              *bool    `json:"isTemplate,omitempty"`
	PaymentInformation      *string  `json:"paymentInformation,omitempty"`
	IsRequest               *bool    `json:"isRequest,omitempty"`
	PayedFromUser           *Ref     `json:"payedFromUser,omitempty"`
	ApprovedFromAdmin       *Ref     `json:"approvedFromAdmin,omitempty"`
	ActualCallStateName     *string  `json:"actualCallStateName,omitempty"`
	CallStateDelayDays      *int     `json:"callStateDelayDays,omitempty"`
	Accnumber               *int     `json:"accnumber,omitempty"`
	GUID                    *string  `json:"guid,omitempty"`
	RelatedBookings         []Ref    `json:"relatedBookings,omitempty"`
	InvoiceItems            []Ref    `json:"invoiceItems,omitempty"`
}

// InvoiceCreate is the creation payload. InvNumber and TotalPrice are
// mandatory, plus either RelatedAddress or Receiver.
type InvoiceCreate struct {
	InvNumber  string  `json:"invNumber"`
	TotalPrice float64 `json:"totalPrice"`

	Gross              *bool    `json:"gross,omitempty"`
	Date               *Date    `json:"date,omitempty"`
	DateItHappend      *Date    `json:"dateItHappend,omitempty"`
	Receiver           *string  `json:"receiver,omitempty"`
	Description        *string  `json:"description,omitempty"`
	Tax                *float64 `json:"tax,omitempty"`
	TaxRate            *float64 `json:"taxRate,omitempty"`
	TaxName            *string  `json:"taxName,omitempty"`
	RelatedAddress     *Ref     `json:"relatedAddress,omitempty"`
	Kind               *string  `json:"kind,omitempty"`
	SelectionAcc       *Ref     `json:"selectionAcc,omitempty"`
	RefNumber          *string  `json:"refNumber,omitempty"`
	IsDraft            *bool    `json:"isDraft,omitempty"`
	IsTemplate         *bool    `json:"isTemplate,omitempty"`
	PaymentInformation *string  `json:"paymentInformation,omitempty"`
	IsRequest          *bool    `json:"isRequest,omitempty"`
	PayedFromUser      *Ref     `json:"payedFromUser,omitempty"`
	StoredInS3         *bool    `json:"storedInS3,omitempty"`
}

// InvoiceUpdate is the partial-update payload.
type InvoiceUpdate struct {
	Gross              *bool    `json:"gross,omitempty"`
	Date               *Date    `json:"date,omitempty"`
	DateItHappend      *Date    `json:"dateItHappend,omitempty"`
	DateSent           *Date    `json:"dateSent,omitempty"`
	InvNumber          *string  `json:"invNumber,omitempty"`
	Receiver           *string  `json:"receiver,omitempty"`
	Description        *string  `json:"description,omitempty"`
	TotalPrice         *float64 `json:"totalPrice,omitempty"`
	Tax                *float64 `json:"tax,omitempty"`
	TaxRate            *float64 `json:"taxRate,omitempty"`
	TaxName            *string  `json:"taxName,omitempty"`
	RelatedAddress     *Ref     `json:"relatedAddress,omitempty"`
	Kind               *string  `json:"kind,omitempty"`
	RefNumber          *string  `json:"refNumber,omitempty"`
	IsDraft            *bool    `json:"isDraft,omitempty"`
	PaymentInformation *string  `json:"paymentInformation,omitempty"`
	PayedFromUser      *Ref     `json:"payedFromUser,omitempty"`
}

// InvoiceFilter selects invoices on list requests.
type InvoiceFilter struct {
	IDIn                  IntList  `filter:"id__in"`
	RelatedAddress        *int64   `filter:"relatedAddress"`
	RelatedAddressIsNull  *bool    `filter:"relatedAddress__isnull"`
	PayedFromUser         *int64   `filter:"payedFromUser"`
	PayedFromUserIsNull   *bool    `filter:"payedFromUser__isnull"`
	CanceledInvoiceIsNull *bool    `filter:"canceledInvoice__isnull"`
	Date                  *Date    `filter:"date"`
	DateGT                *Date    `filter:"date__gt"`
	DateLT                *Date    `filter:"date__lt"`
	InvNumberIn           StrList  `filter:"invNumber__in"`
	Receiver              *string  `filter:"receiver"`
	TotalPrice            *float64 `filter:"totalPrice"`
	TotalPriceGTE         *float64 `filter:"totalPrice__gte"`
	TotalPriceLTE         *float64 `filter:"totalPrice__lte"`
	Kind                  *string  `filter:"kind"`
	KindIn                StrList  `filter:"kind__in"`
	RefNumber             *string  `filter:"refNumber"`
	PaymentDifferenceNE   *float64 `filter:"paymentDifference__ne"`
	IsDraft               *bool    `filter:"isDraft"`
	IsTemplate            *bool    `filter:"isTemplate"`
	IsRequest             *bool    `filter:"isRequest"`
	ActualCallStateName   *string  `filter:"actualCallStateName"`
	Deleted               *bool    `filter:"deleted"`
	Ordering              *string  `filter:"ordering"`
	Search                *string  `filter:"search"`
}

// InvoiceItem is a single line on an invoice. Items can only be attached
// while the invoice is still a draft, and their tax and gross settings
// must match the invoice's.
type InvoiceItem struct {
	RecordBase

	RelatedInvoice *Ref     `json:"relatedInvoice,omitempty"`
	Quantity       *int     `json:"quantity,omitempty"`
	UnitPrice      *float64 `json:"unitPrice,omitempty"`
	TotalPrice     *float64 `json:"totalPrice,omitempty"`
	Title          *string  `json:"title,omitempty"`
	Description    *string  `json:"description,omitempty"`
	TaxRate        *float64 `json:"taxRate,omitempty"`
	Gross          *bool    `json:"gross,omitempty"`
	TaxName        *string  `json:"taxName,omitempty"`
	BillingAccount *Ref     `json:"billingAccount,omitempty"`
	CostCentre     *string  `json:"costCentre,omitempty"`
}

// InvoiceItemCreate is the creation payload. Title, quantity and unit
// price are mandatory; RelatedInvoice is filled in by the invoice
// workflows when left empty.
type InvoiceItemCreate struct {
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`

	RelatedInvoice *Ref     `json:"relatedInvoice,omitempty"`
	Description    *string  `json:"description,omitempty"`
	TaxRate        *float64 `json:"taxRate,omitempty"`
	Gross          *bool    `json:"gross,omitempty"`
	TaxName        *string  `json:"taxName,omitempty"`
	BillingAccount *Ref     `json:"billingAccount,omitempty"`
	CostCentre     *string  `json:"costCentre,omitempty"`
}

// InvoiceItemUpdate is the partial-update payload.
type InvoiceItemUpdate struct {
	Title       *string  `json:"title,omitempty"`
	Quantity    *int     `json:"quantity,omitempty"`
	UnitPrice   *float64 `json:"unitPrice,omitempty"`
	Description *string  `json:"description,omitempty"`
	TaxRate     *float64 `json:"taxRate,omitempty"`
	Gross       *bool    `json:"gross,omitempty"`
	TaxName     *string  `json:"taxName,omitempty"`
	CostCentre  *string  `json:"costCentre,omitempty"`
}

// InvoiceItemFilter selects invoice items on list requests.
type InvoiceItemFilter struct {
	IDIn                  IntList `filter:"id__in"`
	Title                 *string `filter:"title"`
	TaxName               *string `filter:"taxName"`
	QuantityGTE           *int    `filter:"quantity__gte"`
	QuantityLTE           *int    `filter:"quantity__lte"`
	RelatedInvoice        *int64  `filter:"relatedInvoice"`
	RelatedInvoiceIsDraft *bool   `filter:"relatedInvoice__isDraft"`
	BillingAccountIsNull  *bool   `filter:"billingAccount__isnull"`
	Ordering              *string `filter:"ordering"`
	Search                *string `filter:"search"`
}

// CustomField is a field definition; the values members carry for it
// live in MemberCustomField.
type CustomField struct {
	RecordBase

	Name          *string `json:"name,omitempty"`
	Color         *string `json:"color,omitempty"`
	Short         *string `json:"short,omitempty"`
	OrderSequence *int    `json:"orderSequence,omitempty"`
	// SettingsType selects the field widget: "t" text, "f" multiline,
	// "z" digits, "d" date, "c" checkbox, "r" date range, "s" select,
	// "a" multiselect, "b" file, "m" reminder.
	SettingsType *string `json:"settings_type,omitempty"`
	// Kind selects the usage context: "e" members, "h" events,
	// "j" contact details, "i" inventory.
	Kind               *string `json:"kind,omitempty"`
	Additional         *string `json:"additional,omitempty"`
	Description        *string `json:"description,omitempty"`
	MemberShow         *bool   `json:"member_show,omitempty"`
	MemberEdit         *bool   `json:"member_edit,omitempty"`
	NeedsAdminApproval *bool   `json:"needsAdminApproval,omitempty"`
	MemberDSGVO        *bool   `json:"member_dsgvo,omitempty"`
	Position           *int    `json:"position,omitempty"`
	Collection         *Ref    `json:"collection,omitempty"`
}

// CustomFieldCreate is the creation payload.
type CustomFieldCreate struct {
	Name         string `json:"name"`
	SettingsType string `json:"settings_type"`
	Kind         string `json:"kind"`

	CustomFieldUpdate
}

// CustomFieldUpdate is the partial-update payload.
type CustomFieldUpdate struct {
	Color              *string `json:"color,omitempty"`
	Short              *string `json:"short,omitempty"`
	OrderSequence      *int    `json:"orderSequence,omitempty"`
	Additional         *string `json:"additional,omitempty"`
	Description        *string `json:"description,omitempty"`
	MemberShow         *bool   `json:"member_show,omitempty"`
	MemberEdit         *bool   `json:"member_edit,omitempty"`
	NeedsAdminApproval *bool   `json:"needsAdminApproval,omitempty"`
	MemberDSGVO        *bool   `json:"member_dsgvo,omitempty"`
	Position           *int    `json:"position,omitempty"`
}

// CustomFieldFilter selects custom field definitions on list requests.
type CustomFieldFilter struct {
	IDIn            IntList `filter:"id__in"`
	Name            *string `filter:"name"`
	Color           *string `filter:"color"`
	Kind            *string `filter:"kind"`
	MemberEdit      *bool   `filter:"member_edit"`
	MemberShow      *bool   `filter:"member_show"`
	DeletedByIsNull *bool   `filter:"_deletedBy__isnull"`
	Deleted         *bool   `filter:"deleted"`
	Ordering        *string `filter:"ordering"`
}

// MemberCustomField holds the value a member carries for a custom field.
// Creating the association requires referencing the field definition;
// once it exists, values are changed with Update on the association id.
type MemberCustomField struct {
	RecordBase

	UserObject     *Ref    `json:"userObject,omitempty"`
	CustomField    *Ref    `json:"customField,omitempty"`
	Value          *string `json:"value,omitempty"`
	RequestedValue *string `json:"requestedValue,omitempty"`
}

// MemberCustomFieldCreate is the creation payload.
type MemberCustomFieldCreate struct {
	CustomField *Ref   `json:"customField"`
	Value       string `json:"value"`
}

// MemberCustomFieldUpdate is the partial-update payload.
type MemberCustomFieldUpdate struct {
	Value *string `json:"value,omitempty"`
}

// MemberCustomFieldFilter selects member custom field values.
type MemberCustomFieldFilter struct {
	IDIn        IntList `filter:"id__in"`
	CustomField *int64  `filter:"customField"`
	Value       *string `filter:"value"`
	Ordering    *string `filter:"ordering"`
}

// Booking is a bookkeeping transaction.
type Booking struct {
	RecordBase

	Amount            *float64   `json:"amount,omitempty"`
	BankAccount       *Ref       `json:"bankAccount,omitempty"`
	BillingAccount    *Ref       `json:"billingAccount,omitempty"`
	Description       *string    `json:"description,omitempty"`
	Date              *Timestamp `json:"date,omitempty"`
	Receiver          *string    `json:"receiver,omitempty"`
	BillingID         *string    `json:"billingId,omitempty"`
	Blocked           *bool      `json:"blocked,omitempty"`
	PaymentDifference *float64   `json:"paymentDifference,omitempty"`
	CounterpartIBAN   *string    `json:"counterpartIban,omitempty"`
	CounterpartBIC    *string    `json:"counterpartBic,omitempty"`
	TwingleDonation   *bool      `json:"twingleDonation,omitempty"`
	BookingProject    *string    `json:"bookingProject,omitempty"`
	Sphere            *int       `json:"sphere,omitempty"`
	RelatedInvoice    []Ref      `json:"relatedInvoice,omitempty"`
}

// BookingCreate is the creation payload. Receiver and date are mandatory.
type BookingCreate struct {
	Receiver string    `json:"receiver"`
	Date     Timestamp `json:"date"`

	Amount          *float64 `json:"amount,omitempty"`
	BankAccount     *Ref     `json:"bankAccount,omitempty"`
	BillingAccount  *Ref     `json:"billingAccount,omitempty"`
	Description     *string  `json:"description,omitempty"`
	BillingID       *string  `json:"billingId,omitempty"`
	Blocked         *bool    `json:"blocked,omitempty"`
	CounterpartIBAN *string  `json:"counterpartIban,omitempty"`
	CounterpartBIC  *string  `json:"counterpartBic,omitempty"`
	BookingProject  *string  `json:"bookingProject,omitempty"`
	Sphere          *int     `json:"sphere,omitempty"`
	RelatedInvoice  []Ref    `json:"relatedInvoice,omitempty"`
}

// BookingUpdate is the partial-update payload.
type BookingUpdate struct {
	Amount         *float64   `json:"amount,omitempty"`
	BillingAccount *Ref       `json:"billingAccount,omitempty"`
	Description    *string    `json:"description,omitempty"`
	Date           *Timestamp `json:"date,omitempty"`
	Receiver       *string    `json:"receiver,omitempty"`
	Blocked        *bool      `json:"blocked,omitempty"`
	BookingProject *string    `json:"bookingProject,omitempty"`
	Sphere         *int       `json:"sphere,omitempty"`
	RelatedInvoice []Ref      `json:"relatedInvoice,omitempty"`
}

// BookingFilter selects bookings on list requests.
type BookingFilter struct {
	IDIn                 IntList    `filter:"id__in"`
	Blocked              *bool      `filter:"blocked"`
	Receiver             *string    `filter:"receiver"`
	Amount               *float64   `filter:"amount"`
	Date                 *Timestamp `filter:"date"`
	DateGT               *Timestamp `filter:"date__gt"`
	DateLT               *Timestamp `filter:"date__lt"`
	PaymentDifferenceGTE *float64   `filter:"paymentDifference__gte"`
	PaymentDifferenceLTE *float64   `filter:"paymentDifference__lte"`
	BillingIDIsNull      *bool      `filter:"billingId__isnull"`
	BillingAccount       *int64     `filter:"billingAccount"`
	BookingProject       *int64     `filter:"bookingProject"`
	BookingProjectIsNull *bool      `filter:"bookingProject__isnull"`
	RelatedInvoice       *int64     `filter:"relatedInvoice"`
	RelatedInvoiceIsNull *bool      `filter:"relatedInvoice__isnull"`
	Deleted              *bool      `filter:"deleted"`
	Search               *string    `filter:"search"`
}

// BookingProject is a bookkeeping project bookings can be assigned to.
type BookingProject struct {
	RecordBase

	Name              *string `json:"name,omitempty"`
	Color             *string `json:"color,omitempty"`
	Short             *string `json:"short,omitempty"`
	Budget            *string `json:"budget,omitempty"`
	Completed         *bool   `json:"completed,omitempty"`
	ProjectCostCentre *string `json:"projectCostCentre,omitempty"`
}

// BookingProjectCreate is the creation payload.
type BookingProjectCreate struct {
	Name string `json:"name"`

	BookingProjectUpdate
}

// BookingProjectUpdate is the partial-update payload.
type BookingProjectUpdate struct {
	Color             *string `json:"color,omitempty"`
	Short             *string `json:"short,omitempty"`
	Budget            *string `json:"budget,omitempty"`
	Completed         *bool   `json:"completed,omitempty"`
	ProjectCostCentre *string `json:"projectCostCentre,omitempty"`
}

// BookingProjectFilter selects booking projects on list requests.
type BookingProjectFilter struct {
	IDIn      IntList  `filter:"id__in"`
	Name      *string  `filter:"name"`
	Short     *string  `filter:"short"`
	BudgetGT  *float64 `filter:"budget__gt"`
	BudgetLT  *float64 `filter:"budget__lt"`
	Completed *bool    `filter:"completed"`
}
