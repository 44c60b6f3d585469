package client

import (
	"context"
	"fmt"

	"github.com/easyverein-community/go-easyverein/internal/http"
	"github.com/easyverein-community/go-easyverein/pkg/easyverein"
)

// Endpoint names as exposed by the API.
const (
	endpointContactDetails = "contact-details"
	endpointMember         = "member"
	endpointMemberGroup    = "member-group"
	endpointInvoice        = "invoice"
	endpointInvoiceItem    = "invoice-item"
	endpointCustomField    = "custom-field"
	endpointBooking        = "booking"
	endpointBookingProject = "booking-project"

	// Sub-paths below a member.
	patternMemberCustomFields = "member/%d/custom-fields"
	patternMemberGroups       = "member/%d/groups"
)

func newContactDetailsClient(httpClient *http.Client, logger easyverein.Logger) easyverein.ContactDetailsClient {
	return newRecycleBinClient[easyverein.ContactDetails, easyverein.ContactDetailsCreate, easyverein.ContactDetailsUpdate, easyverein.ContactDetailsFilter](httpClient, logger, endpointContactDetails)
}

func newMembersClient(httpClient *http.Client, logger easyverein.Logger) easyverein.MembersClient {
	return newRecycleBinClient[easyverein.Member, easyverein.MemberCreate, easyverein.MemberUpdate, easyverein.MemberFilter](httpClient, logger, endpointMember)
}

func newMemberGroupsClient(httpClient *http.Client, logger easyverein.Logger) easyverein.MemberGroupsClient {
	return newRecycleBinClient[easyverein.MemberGroup, easyverein.MemberGroupCreate, easyverein.MemberGroupUpdate, easyverein.MemberGroupFilter](httpClient, logger, endpointMemberGroup)
}

func newCustomFieldsClient(httpClient *http.Client, logger easyverein.Logger) easyverein.CustomFieldsClient {
	return newRecycleBinClient[easyverein.CustomField, easyverein.CustomFieldCreate, easyverein.CustomFieldUpdate, easyverein.CustomFieldFilter](httpClient, logger, endpointCustomField)
}

func newInvoiceItemsClient(httpClient *http.Client, logger easyverein.Logger) easyverein.InvoiceItemsClient {
	return newCRUDClient[easyverein.InvoiceItem, easyverein.InvoiceItemCreate, easyverein.InvoiceItemUpdate, easyverein.InvoiceItemFilter](httpClient, logger, endpointInvoiceItem)
}

func newBookingsClient(httpClient *http.Client, logger easyverein.Logger) easyverein.BookingsClient {
	return newCRUDClient[easyverein.Booking, easyverein.BookingCreate, easyverein.BookingUpdate, easyverein.BookingFilter](httpClient, logger, endpointBooking)
}

func newBookingProjectsClient(httpClient *http.Client, logger easyverein.Logger) easyverein.BookingProjectsClient {
	return newCRUDClient[easyverein.BookingProject, easyverein.BookingProjectCreate, easyverein.BookingProjectUpdate, easyverein.BookingProjectFilter](httpClient, logger, endpointBookingProject)
}

// memberCustomFieldsClient implements easyverein.MemberCustomFieldsClient.
type memberCustomFieldsClient struct {
	*nestedClient[easyverein.MemberCustomField, easyverein.MemberCustomFieldCreate, easyverein.MemberCustomFieldUpdate, easyverein.MemberCustomFieldFilter]
}

func newMemberCustomFieldsClient(httpClient *http.Client, logger easyverein.Logger) easyverein.MemberCustomFieldsClient {
	return &memberCustomFieldsClient{
		nestedClient: newNestedClient[easyverein.MemberCustomField, easyverein.MemberCustomFieldCreate, easyverein.MemberCustomFieldUpdate, easyverein.MemberCustomFieldFilter](httpClient, logger, patternMemberCustomFields),
	}
}

// EnsureSet implements easyverein.MemberCustomFieldsClient.EnsureSet.
func (c *memberCustomFieldsClient) EnsureSet(ctx context.Context, memberID, customFieldID int64, value string) (*easyverein.MemberCustomField, error) {
	opts := easyverein.NewListOptions().
		WithLimit(100).
		WithQuery("{id,value,customField{id}}")

	existing, err := c.List(ctx, memberID, opts, nil)
	if err != nil {
		return nil, fmt.Errorf("listing custom field values of member %d: %w", memberID, err)
	}

	for i := range existing.Results {
		field := existing.Results[i].CustomField
		if field != nil && field.ID == customFieldID {
			return c.Update(ctx, memberID, existing.Results[i].ID, &easyverein.MemberCustomFieldUpdate{
				Value: easyverein.Ptr(value),
			})
		}
	}

	return c.Create(ctx, memberID, &easyverein.MemberCustomFieldCreate{
		CustomField: easyverein.RefID(customFieldID),
		Value:       value,
	})
}

// memberMemberGroupsClient implements easyverein.MemberMemberGroupsClient.
type memberMemberGroupsClient struct {
	*nestedClient[easyverein.MemberMemberGroup, easyverein.MemberMemberGroupCreate, easyverein.MemberMemberGroupUpdate, easyverein.MemberMemberGroupFilter]
	logger easyverein.Logger
}

func newMemberMemberGroupsClient(httpClient *http.Client, logger easyverein.Logger) easyverein.MemberMemberGroupsClient {
	return &memberMemberGroupsClient{
		nestedClient: newNestedClient[easyverein.MemberMemberGroup, easyverein.MemberMemberGroupCreate, easyverein.MemberMemberGroupUpdate, easyverein.MemberMemberGroupFilter](httpClient, logger, patternMemberGroups),
		logger:       logger,
	}
}

// GetGroupMembership implements easyverein.MemberMemberGroupsClient.GetGroupMembership.
func (c *memberMemberGroupsClient) GetGroupMembership(ctx context.Context, memberID, groupID int64) (*easyverein.MemberMemberGroup, error) {
	filter := &easyverein.MemberMemberGroupFilter{MemberGroup: easyverein.Ptr(groupID)}

	return c.scoped(memberID).Get(ctx, filter)
}

// AddToGroup implements easyverein.MemberMemberGroupsClient.AddToGroup.
func (c *memberMemberGroupsClient) AddToGroup(ctx context.Context, memberID, groupID int64, paymentActive bool) (*easyverein.MemberMemberGroup, error) {
	existing, err := c.GetGroupMembership(ctx, memberID, groupID)
	if err == nil {
		if c.logger != nil {
			c.logger.Info("member already in group", map[string]interface{}{
				"member": memberID,
				"group":  groupID,
			})
		}

		return existing, nil
	}

	if !easyverein.IsNotFound(err) {
		return nil, err
	}

	return c.Create(ctx, memberID, &easyverein.MemberMemberGroupCreate{
		MemberGroup:   easyverein.RefID(groupID),
		PaymentActive: paymentActive,
	})
}

// RemoveFromGroup implements easyverein.MemberMemberGroupsClient.RemoveFromGroup.
func (c *memberMemberGroupsClient) RemoveFromGroup(ctx context.Context, memberID, groupID int64) error {
	membership, err := c.GetGroupMembership(ctx, memberID, groupID)
	if err != nil {
		return fmt.Errorf("resolving membership of member %d in group %d: %w", memberID, groupID, err)
	}

	return c.Delete(ctx, memberID, membership.ID)
}

// SetGroupBillingStatus implements easyverein.MemberMemberGroupsClient.SetGroupBillingStatus.
func (c *memberMemberGroupsClient) SetGroupBillingStatus(ctx context.Context, memberID, groupID int64, active bool) (*easyverein.MemberMemberGroup, error) {
	membership, err := c.GetGroupMembership(ctx, memberID, groupID)
	if err != nil {
		return nil, fmt.Errorf("resolving membership of member %d in group %d: %w", memberID, groupID, err)
	}

	return c.Update(ctx, memberID, membership.ID, &easyverein.MemberMemberGroupUpdate{
		PaymentActive: easyverein.Ptr(active),
	})
}
