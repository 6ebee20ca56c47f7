// Package tenant models restaurant accounts and the rules for their URL identifiers.
//
// A tenant is reachable at "<slug>.<root domain>". Slugs are derived from the
// restaurant name with GenerateSlug, shortened with TruncateSlug, checked with IsValidSlug and IsReserved and
// made unique with GenerateUniqueSlug, which gives up after MaxSlugAttempts
// candidates instead of searching forever.
//
// Reserved slugs (www, api, admin, portal, yonetim, ...) belong to platform routes
// and are never issued, whatever the existing slugs are.
package tenant
