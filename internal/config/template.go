package config

// Template is the starter config written by `seasonsim init`.
const Template = `# Season Simulator Configuration
# ==============================
# This file defines the parameters for generating and simulating a season.

# Season defines the week range and scheduling limits.
season:
  # Number of weeks in the regular season. Every team gets one slot per week:
  # a game or its bye.
  weeks: 18

  # Byes are drawn from this window first. When a team has no free week
  # inside it, any free week of the season is used instead.
  bye_window:
    start: 4
    end: 14

  # Randomized assignment is retried from scratch when the validator finds a
  # conflict. Generation gives up after this many attempts.
  max_attempts: 25

  # Seed for the random generator. 0 picks a new seed every run.
  # SEASONSIM_SEED overrides this value.
  seed: 0

# Strategy determines which teams are paired in each pass.
# "rotation" plays division rivals twice, the next division in the same
# conference once, and the matching division of the other conference once.
strategy: rotation

simulation:
  # Rating points added to both teams after every game.
  rating_boost: 3
  # Playoff teams per conference. The bracket requires 7.
  playoff_seeds: 7

# Teams, in roster order. Conferences and divisions are grouped in order of
# first appearance; inter-conference pairing zips divisions positionally.
# Team names must be unique.
teams:
  # AFC East
  - {name: Buffalo Bills, conference: AFC, division: East, rating: 75, stadium_rating: 65}
  - {name: Miami Dolphins, conference: AFC, division: East, rating: 68, stadium_rating: 55}
  - {name: New England Patriots, conference: AFC, division: East, rating: 45, stadium_rating: 60}
  - {name: New York Jets, conference: AFC, division: East, rating: 58, stadium_rating: 70}
  # AFC North
  - {name: Cincinnati Bengals, conference: AFC, division: North, rating: 72, stadium_rating: 62}
  - {name: Baltimore Ravens, conference: AFC, division: North, rating: 80, stadium_rating: 68}
  - {name: Pittsburgh Steelers, conference: AFC, division: North, rating: 63, stadium_rating: 75}
  - {name: Cleveland Browns, conference: AFC, division: North, rating: 60, stadium_rating: 58}
  # AFC South
  - {name: Jacksonville Jaguars, conference: AFC, division: South, rating: 55, stadium_rating: 45}
  - {name: Tennessee Titans, conference: AFC, division: South, rating: 50, stadium_rating: 50}
  - {name: Indianapolis Colts, conference: AFC, division: South, rating: 53, stadium_rating: 48}
  - {name: Houston Texans, conference: AFC, division: South, rating: 67, stadium_rating: 52}
  # AFC West
  - {name: Kansas City Chiefs, conference: AFC, division: West, rating: 95, stadium_rating: 80}
  - {name: Los Angeles Chargers, conference: AFC, division: West, rating: 57, stadium_rating: 40}
  - {name: Las Vegas Raiders, conference: AFC, division: West, rating: 52, stadium_rating: 68}
  - {name: Denver Broncos, conference: AFC, division: West, rating: 48, stadium_rating: 72}
  # NFC East
  - {name: Philadelphia Eagles, conference: NFC, division: East, rating: 85, stadium_rating: 78}
  - {name: Dallas Cowboys, conference: NFC, division: East, rating: 82, stadium_rating: 77}
  - {name: New York Giants, conference: NFC, division: East, rating: 42, stadium_rating: 65}
  - {name: Washington Commanders, conference: NFC, division: East, rating: 40, stadium_rating: 55}
  # NFC North
  - {name: Detroit Lions, conference: NFC, division: North, rating: 73, stadium_rating: 70}
  - {name: Green Bay Packers, conference: NFC, division: North, rating: 68, stadium_rating: 78}
  - {name: Minnesota Vikings, conference: NFC, division: North, rating: 60, stadium_rating: 72}
  - {name: Chicago Bears, conference: NFC, division: North, rating: 50, stadium_rating: 60}
  # NFC South
  - {name: Tampa Bay Buccaneers, conference: NFC, division: South, rating: 54, stadium_rating: 58}
  - {name: New Orleans Saints, conference: NFC, division: South, rating: 62, stadium_rating: 75}
  - {name: Carolina Panthers, conference: NFC, division: South, rating: 35, stadium_rating: 50}
  - {name: Atlanta Falcons, conference: NFC, division: South, rating: 45, stadium_rating: 54}
  # NFC West
  - {name: San Francisco 49ers, conference: NFC, division: West, rating: 94, stadium_rating: 76}
  - {name: Seattle Seahawks, conference: NFC, division: West, rating: 65, stadium_rating: 98}
  - {name: Los Angeles Rams, conference: NFC, division: West, rating: 58, stadium_rating: 66}
  - {name: Arizona Cardinals, conference: NFC, division: West, rating: 40, stadium_rating: 50}
`
