// Package cnpj extracts CNPJ identifiers from free-form cell text and
// normalizes them for registry lookups.
//
// Extraction is purely syntactic: any substring shaped like
// DD.DDD.DDD/DDDD-DD is reported, with no check-digit validation. That keeps
// the extractor total: it never fails, it only returns fewer matches.
package cnpj
