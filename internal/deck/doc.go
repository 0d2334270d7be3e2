// Package deck assembles raw labware records from deck layout content.
package deck
